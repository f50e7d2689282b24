package commands

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-text/internal/app"
	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/pkg/input"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ErrSignatureNotVerified is returned by the verify command when the signature does not match.
var ErrSignatureNotVerified = errors.New("signature not verified")

const (
	verifiedMessage    = "✓ signature verified"
	notVerifiedMessage = "⚠ signature not verified"
)

type signRequest struct {
	Input  string `validate:"required,input_source"`
	Key    string `validate:"required,file"`
	Format string `validate:"required,signing_algorithm"`
}

type verifyRequest struct {
	Input     string `validate:"required,input_source"`
	Key       string `validate:"required,file"`
	Signature string `validate:"required"`
	Format    string `validate:"required,signing_algorithm"`
}

type generateRequest struct {
	Format string `validate:"required,algorithm"`
	Output string `validate:"required,dir"`
}

type cipherRequest struct {
	Input string `validate:"required,input_source"`
	Key   string `validate:"required,file"`
	Nonce string `validate:"required,file"`
}

// TextCommandHandler encapsulates logic for handling text operations via CLI.
type TextCommandHandler struct {
	textService *app.TextService
	logger      logger.Logger
}

// NewTextCommandHandler loads the configuration selected on cmd and returns a
// TextCommandHandler with a configured logger and text service.
func NewTextCommandHandler(cmd *cobra.Command) (*TextCommandHandler, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	textService, err := app.NewTextService(&cfg.Text, input.NewSource(cmd.InOrStdin()), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create text service: %w", err)
	}

	return &TextCommandHandler{
		textService: textService,
		logger:      loggerInstance,
	}, nil
}

// SignCmd prints the signature of the input
func (commandHandler *TextCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	request := signRequest{
		Input:  mustGetString(cmd, "input"),
		Key:    mustGetString(cmd, "key"),
		Format: mustGetString(cmd, "format"),
	}
	if err := validateRequest(&request); err != nil {
		return err
	}

	algorithm, err := cryptoalg.ParseAlgorithm(request.Format)
	if err != nil {
		return err
	}

	signature, err := commandHandler.textService.Sign(cmd.Context(), request.Input, request.Key, algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signature)
	return err
}

// VerifyCmd checks a signature against the input and fails when it does not match
func (commandHandler *TextCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	request := verifyRequest{
		Input:     mustGetString(cmd, "input"),
		Key:       mustGetString(cmd, "key"),
		Signature: mustGetString(cmd, "sig"),
		Format:    mustGetString(cmd, "format"),
	}
	if err := validateRequest(&request); err != nil {
		return err
	}

	algorithm, err := cryptoalg.ParseAlgorithm(request.Format)
	if err != nil {
		return err
	}

	verified, err := commandHandler.textService.Verify(cmd.Context(), request.Input, request.Key, algorithm, request.Signature)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	if !verified {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), notVerifiedMessage); err != nil {
			return err
		}
		return ErrSignatureNotVerified
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), verifiedMessage)
	return err
}

// GenerateCmd generates key material and persists it in the selected directory
func (commandHandler *TextCommandHandler) GenerateCmd(cmd *cobra.Command, _ []string) error {
	request := generateRequest{
		Format: mustGetString(cmd, "format"),
		Output: mustGetString(cmd, "output"),
	}
	if err := validateRequest(&request); err != nil {
		return err
	}

	algorithm, err := cryptoalg.ParseAlgorithm(request.Format)
	if err != nil {
		return err
	}

	blobs, err := commandHandler.textService.Generate(cmd.Context(), algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	opts := app.KeyFileOptions{
		Force:  mustGetBool(cmd, "force"),
		Unique: mustGetBool(cmd, "unique"),
	}
	paths, err := app.WriteKeyFiles(request.Output, algorithm, blobs, opts)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	for _, path := range paths {
		commandHandler.logger.Info("key saved to ", path)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}

// EncryptCmd prints the ciphertext of the input
func (commandHandler *TextCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	request := cipherRequest{
		Input: mustGetString(cmd, "input"),
		Key:   mustGetString(cmd, "key"),
		Nonce: mustGetString(cmd, "nonce"),
	}
	if err := validateRequest(&request); err != nil {
		return err
	}

	ciphertext, err := commandHandler.textService.Encrypt(cmd.Context(), request.Input, request.Key, request.Nonce)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return err
}

// DecryptCmd prints the plaintext of a ciphertext produced by EncryptCmd
func (commandHandler *TextCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	request := cipherRequest{
		Input: mustGetString(cmd, "input"),
		Key:   mustGetString(cmd, "key"),
		Nonce: mustGetString(cmd, "nonce"),
	}
	if err := validateRequest(&request); err != nil {
		return err
	}

	plaintext, err := commandHandler.textService.Decrypt(cmd.Context(), request.Input, request.Key, request.Nonce)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(plaintext); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

// InitTextCommands registers the text command group
func InitTextCommands(rootCmd *cobra.Command) error {
	handler := &TextCommandHandler{}

	var textCmd = &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initialized, err := NewTextCommandHandler(cmd)
			if err != nil {
				return fmt.Errorf("failed to create text command handler: %w", err)
			}
			*handler = *initialized
			return nil
		},
	}

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign text with a blake3 key or an ed25519 private key",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.SignCmd(cmd, args) },
	}
	addInputFlag(signCmd)
	signCmd.Flags().StringP("key", "k", "", "Path to the signing key")
	signCmd.Flags().StringP("format", "", string(cryptoalg.AlgorithmBlake3), "Signing algorithm (blake3, ed25519)")
	textCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a text signature",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.VerifyCmd(cmd, args) },
	}
	addInputFlag(verifyCmd)
	verifyCmd.Flags().StringP("key", "k", "", "Path to the blake3 key or ed25519 public key")
	verifyCmd.Flags().StringP("sig", "s", "", "Signature as URL-safe base64")
	verifyCmd.Flags().StringP("format", "", string(cryptoalg.AlgorithmBlake3), "Signing algorithm (blake3, ed25519)")
	textCmd.AddCommand(verifyCmd)

	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate key material",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.GenerateCmd(cmd, args) },
	}
	generateCmd.Flags().StringP("format", "f", string(cryptoalg.AlgorithmBlake3), "Algorithm (blake3, ed25519, chacha20poly1305)")
	generateCmd.Flags().StringP("output", "o", "", "Directory to store the key files")
	generateCmd.Flags().BoolP("force", "", false, "Overwrite existing key files")
	generateCmd.Flags().BoolP("unique", "", false, "Prefix key file names with a random UUID")
	textCmd.AddCommand(generateCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with chacha20poly1305",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.EncryptCmd(cmd, args) },
	}
	addInputFlag(encryptCmd)
	addCipherFlags(encryptCmd)
	textCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text encrypted with chacha20poly1305",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return handler.DecryptCmd(cmd, args) },
	}
	addInputFlag(decryptCmd)
	addCipherFlags(decryptCmd)
	textCmd.AddCommand(decryptCmd)

	rootCmd.AddCommand(textCmd)
	return nil
}

func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Path to the 32-byte key")
	cmd.Flags().StringP("nonce", "n", "", "Path to the 12-byte nonce")
}
