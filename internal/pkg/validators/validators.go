// Package validators provides the custom validator tags used for command flags.
package validators

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/pkg/input"

	"github.com/go-playground/validator/v10"
)

// Tag names registered by New
const (
	TagAlgorithm        = "algorithm"
	TagSigningAlgorithm = "signing_algorithm"
	TagInputSource      = "input_source"
)

// AlgorithmValidation accepts any supported algorithm tag.
func AlgorithmValidation(fl validator.FieldLevel) bool {
	_, err := cryptoalg.ParseAlgorithm(fl.Field().String())
	return err == nil
}

// SigningAlgorithmValidation accepts algorithm tags that can sign and verify.
func SigningAlgorithmValidation(fl validator.FieldLevel) bool {
	algorithm, err := cryptoalg.ParseAlgorithm(fl.Field().String())
	return err == nil && algorithm.CanSign()
}

// InputSourceValidation accepts "-" for standard input or a path to an existing regular file.
func InputSourceValidation(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == input.Stdin {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// New returns a validator with the custom tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	tags := map[string]validator.Func{
		TagAlgorithm:        AlgorithmValidation,
		TagSigningAlgorithm: SigningAlgorithmValidation,
		TagInputSource:      InputSourceValidation,
	}
	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}

	return validate, nil
}
