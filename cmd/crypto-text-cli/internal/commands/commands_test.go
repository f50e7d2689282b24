//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/pkg/config"
	"github.com/MGTheTrain/crypto-text/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	rootCmd := &cobra.Command{Use: "crypto-text-cli", SilenceUsage: true, SilenceErrors: true}
	AddConfigFlag(rootCmd)
	require.NoError(t, InitTextCommands(rootCmd))
	require.NoError(t, InitBase64Commands(rootCmd))
	return rootCmd
}

// execute runs the command line against a fresh root and returns its standard output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	rootCmd := newTestRoot(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	tests := []struct {
		format string
		files  []string
		sizes  []int
	}{
		{"blake3", []string{"blake3.txt"}, []int{32}},
		{"ed25519", []string{"ed25519.sk", "ed25519.pk"}, []int{32, 32}},
		{"chacha20poly1305", []string{"chacha20poly1305.key", "chacha20poly1305.nonce"}, []int{32, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()

			out, err := execute(t, "", "text", "generate", "--format", tt.format, "-o", dir)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, len(tt.files))
			for i, name := range tt.files {
				path := filepath.Join(dir, name)
				assert.Equal(t, path, lines[i])

				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Len(t, data, tt.sizes[i])
			}
		})
	}
}

func TestGenerateCmdRefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "text", "generate", "--format", "blake3", "-o", dir)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "blake3.txt"))
	require.NoError(t, err)

	_, err = execute(t, "", "text", "generate", "--format", "blake3", "-o", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "text", "generate", "--format", "blake3", "-o", dir, "--force")
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "blake3.txt"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateCmdUnique(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 2; i++ {
		_, err := execute(t, "", "text", "generate", "--format", "ed25519", "-o", dir, "--unique")
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	for _, entry := range entries {
		assert.True(t, strings.HasSuffix(entry.Name(), "-ed25519.sk") || strings.HasSuffix(entry.Name(), "-ed25519.pk"), entry.Name())
	}
}

func TestGenerateCmdRejectsMissingDirectory(t *testing.T) {
	_, err := execute(t, "", "text", "generate", "--format", "blake3", "-o", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestSignAndVerifyCmd(t *testing.T) {
	for _, format := range []string{"blake3", "ed25519"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			_, err := execute(t, "", "text", "generate", "--format", format, "-o", dir)
			require.NoError(t, err)

			signKey, verifyKey := filepath.Join(dir, "blake3.txt"), filepath.Join(dir, "blake3.txt")
			if format == "ed25519" {
				signKey, verifyKey = filepath.Join(dir, "ed25519.sk"), filepath.Join(dir, "ed25519.pk")
			}

			out, err := execute(t, "hello world\n", "text", "sign", "-k", signKey, "--format", format)
			require.NoError(t, err)
			signature := strings.TrimSpace(out)
			require.NotEmpty(t, signature)

			out, err = execute(t, "  hello world  ", "text", "verify", "-k", verifyKey, "-s", signature, "--format", format)
			require.NoError(t, err)
			assert.Equal(t, verifiedMessage+"\n", out)

			out, err = execute(t, "hello there", "text", "verify", "-k", verifyKey, "-s", signature, "--format", format)
			require.ErrorIs(t, err, ErrSignatureNotVerified)
			assert.Equal(t, notVerifiedMessage+"\n", out)
		})
	}
}

func TestSignCmdFromFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "text", "generate", "--format", "blake3", "-o", dir)
	require.NoError(t, err)
	key := filepath.Join(dir, "blake3.txt")

	inputPath := testutil.WriteTempFile(t, "message.txt", []byte("hello world"))

	fromFile, err := execute(t, "", "text", "sign", "-i", inputPath, "-k", key)
	require.NoError(t, err)
	fromStdin, err := execute(t, "hello world", "text", "sign", "-k", key)
	require.NoError(t, err)

	assert.Equal(t, fromStdin, fromFile)
}

func TestSignCmdRejectsInvalidArguments(t *testing.T) {
	key := testutil.WriteTempFile(t, "key", make([]byte, cryptoalg.Blake3KeySize))

	tests := []struct {
		name string
		args []string
	}{
		{"aead format", []string{"text", "sign", "-k", key, "--format", "chacha20poly1305"}},
		{"unknown format", []string{"text", "sign", "-k", key, "--format", "rsa"}},
		{"missing key", []string{"text", "sign", "-k", filepath.Join(t.TempDir(), "nope")}},
		{"missing input", []string{"text", "sign", "-i", filepath.Join(t.TempDir(), "nope"), "-k", key}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "hello", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid arguments")
		})
	}
}

func TestSignCmdWrongKeyLength(t *testing.T) {
	key := testutil.WriteTempFile(t, "key", make([]byte, 16))

	_, err := execute(t, "hello", "text", "sign", "-k", key)
	require.ErrorIs(t, err, cryptoalg.ErrInvalidKeyLength)
}

func TestEncryptAndDecryptCmd(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "text", "generate", "--format", "chacha20poly1305", "-o", dir)
	require.NoError(t, err)
	key, nonce := filepath.Join(dir, "chacha20poly1305.key"), filepath.Join(dir, "chacha20poly1305.nonce")

	out, err := execute(t, "attack at dawn\n", "text", "encrypt", "-k", key, "-n", nonce)
	require.NoError(t, err)
	ciphertext := strings.TrimSpace(out)
	require.NotEmpty(t, ciphertext)

	out, err = execute(t, ciphertext, "text", "decrypt", "-k", key, "-n", nonce)
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn\n", out)
}

func TestDecryptCmdTamperedCiphertext(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", "text", "generate", "--format", "chacha20poly1305", "-o", dir)
	require.NoError(t, err)
	key, nonce := filepath.Join(dir, "chacha20poly1305.key"), filepath.Join(dir, "chacha20poly1305.nonce")

	out, err := execute(t, "attack at dawn", "text", "encrypt", "-k", key, "-n", nonce)
	require.NoError(t, err)
	ciphertext := []byte(strings.TrimSpace(out))
	if ciphertext[0] == 'A' {
		ciphertext[0] = 'B'
	} else {
		ciphertext[0] = 'A'
	}

	out, err = execute(t, string(ciphertext), "text", "decrypt", "-k", key, "-n", nonce)
	require.ErrorIs(t, err, cryptoalg.ErrDecryptionFailed)
	assert.Empty(t, out)
}

func TestBase64Cmd(t *testing.T) {
	tests := []struct {
		format  string
		decoded string
		encoded string
	}{
		{"standard", "hello?>", "aGVsbG8/Pg=="},
		{"urlsafe", "hello?>", "aGVsbG8_Pg"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := execute(t, tt.decoded, "base64", "encode", "--format", tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.encoded+"\n", out)

			out, err = execute(t, tt.encoded+"\n", "base64", "decode", "--format", tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.decoded, out)
		})
	}
}

func TestBase64CmdRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "hello", "base64", "encode", "--format", "hex")
	require.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	configPath := testutil.WriteTempFile(t, "config.yaml", []byte("text:\n  trim_input: false\n  blake3_key_mode: raw\n"))
	key := testutil.WriteTempFile(t, "key", make([]byte, cryptoalg.Blake3KeySize))

	trimmed, err := execute(t, " hello ", "text", "sign", "-k", key)
	require.NoError(t, err)
	untrimmed, err := execute(t, " hello ", "--config", configPath, "text", "sign", "-k", key)
	require.NoError(t, err)

	assert.NotEqual(t, trimmed, untrimmed)
}

func TestConfigFlagInvalidFile(t *testing.T) {
	configPath := testutil.WriteTempFile(t, "config.yaml", []byte("text:\n  blake3_key_mode: hex\n"))

	_, err := execute(t, "", "--config", configPath, "text", "generate", "-o", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
