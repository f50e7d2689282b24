package app

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
)

// EncodeText renders signature or ciphertext bytes as URL-safe base64 without padding.
func EncodeText(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeText reverses EncodeText. Surrounding whitespace is ignored.
func DecodeText(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrInvalidEncoding, err)
	}
	return data, nil
}
