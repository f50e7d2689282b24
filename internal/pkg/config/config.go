package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config path is given.
const EnvConfigPath = "CRYPTO_TEXT_CONFIG"

// Config is the root configuration of the CLI.
type Config struct {
	Logger LoggerSettings `yaml:"logger"`
	Text   TextSettings   `yaml:"text"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Text: TextSettings{
			TrimInput:     true,
			Blake3KeyMode: cryptoalg.KeyModeRaw,
		},
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if err := c.Text.Validate(); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	return nil
}

// ResolvePath returns path, or the value of EnvConfigPath when path is empty.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads the YAML file at path over the defaults and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
