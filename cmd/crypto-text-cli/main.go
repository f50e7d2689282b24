// Package main is the entry point for the crypto-text-cli application.
// It initializes the root command and registers the text and base64 command groups,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/crypto-text/cmd/crypto-text-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-text-cli",
		Short: "Text signing and encryption CLI tool",
		Long: `crypto-text-cli signs, verifies, encrypts and decrypts text.
Supports BLAKE3 keyed hashes and Ed25519 signatures for signing,
and ChaCha20-Poly1305 for authenticated encryption.

Signatures and ciphertexts are printed as URL-safe base64 without padding.
Settings are read from the file given by --config or the ` + "CRYPTO_TEXT_CONFIG" + ` environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddConfigFlag(rootCmd)

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitTextCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}

	if err := commands.InitBase64Commands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize base64 commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}
