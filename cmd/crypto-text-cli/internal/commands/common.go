package commands

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-text/internal/pkg/config"
	"github.com/MGTheTrain/crypto-text/internal/pkg/input"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"
	"github.com/MGTheTrain/crypto-text/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// AddConfigFlag registers the persistent --config flag on the root command.
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP(configFlag, "", "", "Path to a YAML config file (defaults to $"+config.EnvConfigPath+")")
}

// loadConfig reads the configuration selected by --config or the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		path = ""
	}

	cfg, err := config.Load(config.ResolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// validateRequest checks flag values collected into a tagged struct.
func validateRequest(request interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	err = validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s, Value: %q", fieldErr.Field(), fieldErr.Tag(), fmt.Sprint(fieldErr.Value())))
			}
			return fmt.Errorf("invalid arguments: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", input.Stdin, "Path to the input file, or - for standard input")
}

// mustGetString returns a registered flag value; unregistered names yield "".
func mustGetString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	value, _ := cmd.Flags().GetBool(name)
	return value
}
