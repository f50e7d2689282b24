package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-text/internal/app"
	"github.com/MGTheTrain/crypto-text/internal/pkg/input"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type base64Request struct {
	Input  string `validate:"required,input_source"`
	Format string `validate:"required"`
}

// Base64CommandHandler encapsulates logic for handling base64 operations via CLI.
type Base64CommandHandler struct {
	base64Service *app.Base64Service
	logger        logger.Logger
}

// NewBase64CommandHandler loads the configuration selected on cmd and returns a
// Base64CommandHandler with a configured logger and base64 service.
func NewBase64CommandHandler(cmd *cobra.Command) (*Base64CommandHandler, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	base64Service, err := app.NewBase64Service(input.NewSource(cmd.InOrStdin()), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create base64 service: %w", err)
	}

	return &Base64CommandHandler{
		base64Service: base64Service,
		logger:        loggerInstance,
	}, nil
}

func (commandHandler *Base64CommandHandler) request(cmd *cobra.Command) (string, app.Base64Format, error) {
	request := base64Request{
		Input:  mustGetString(cmd, "input"),
		Format: mustGetString(cmd, "format"),
	}
	if err := validateRequest(&request); err != nil {
		return "", "", err
	}

	format, err := app.ParseBase64Format(request.Format)
	if err != nil {
		return "", "", err
	}
	return request.Input, format, nil
}

// EncodeCmd prints the input encoded as base64
func (commandHandler *Base64CommandHandler) EncodeCmd(cmd *cobra.Command, _ []string) error {
	inputPath, format, err := commandHandler.request(cmd)
	if err != nil {
		return err
	}

	encoded, err := commandHandler.base64Service.Encode(cmd.Context(), inputPath, format)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return err
}

// DecodeCmd prints the decoded bytes of base64 input
func (commandHandler *Base64CommandHandler) DecodeCmd(cmd *cobra.Command, _ []string) error {
	inputPath, format, err := commandHandler.request(cmd)
	if err != nil {
		return err
	}

	decoded, err := commandHandler.base64Service.Decode(cmd.Context(), inputPath, format)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}

// InitBase64Commands registers the base64 command group
func InitBase64Commands(rootCmd *cobra.Command) error {
	handler := &Base64CommandHandler{}

	var base64Cmd = &cobra.Command{
		Use:   "base64",
		Short: "Base64 encode and decode",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initialized, err := NewBase64CommandHandler(cmd)
			if err != nil {
				return fmt.Errorf("failed to create base64 command handler: %w", err)
			}
			*handler = *initialized
			return nil
		},
	}

	var encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode input as base64",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.EncodeCmd(cmd, args) },
	}
	addInputFlag(encodeCmd)
	encodeCmd.Flags().StringP("format", "", string(app.Base64Standard), "Base64 format (standard, urlsafe)")
	base64Cmd.AddCommand(encodeCmd)

	var decodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.DecodeCmd(cmd, args) },
	}
	addInputFlag(decodeCmd)
	decodeCmd.Flags().StringP("format", "", string(app.Base64Standard), "Base64 format (standard, urlsafe)")
	base64Cmd.AddCommand(decodeCmd)

	rootCmd.AddCommand(base64Cmd)
	return nil
}
