package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TextSettings holds the behaviour switches of the text commands.
type TextSettings struct {
	// TrimInput strips leading and trailing whitespace from text input before
	// signing, verifying or encrypting. Signatures made by earlier releases
	// only verify with this enabled.
	TrimInput bool `yaml:"trim_input"`

	// Blake3KeyMode selects how BLAKE3 keys are generated: raw random bytes,
	// or printable password characters as earlier releases did.
	Blake3KeyMode string `yaml:"blake3_key_mode" validate:"required,oneof=raw printable"`
}

// Validate checks that all fields in TextSettings are valid
func (s *TextSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TextSettings: %w", err)
	}

	return nil
}
