package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/pkg/input"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"
)

// Base64Format selects the base64 alphabet.
type Base64Format string

const (
	// Base64Standard is the standard alphabet with padding
	Base64Standard Base64Format = "standard"
	// Base64URLSafe is the URL-safe alphabet without padding
	Base64URLSafe Base64Format = "urlsafe"
)

// ParseBase64Format parses a base64 format name case-insensitively.
func ParseBase64Format(s string) (Base64Format, error) {
	switch f := Base64Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Base64Standard, Base64URLSafe:
		return f, nil
	default:
		return "", fmt.Errorf("invalid base64 format: %q", s)
	}
}

func (f Base64Format) encoding() *base64.Encoding {
	if f == Base64URLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Base64Service encodes and decodes input streams.
type Base64Service struct {
	source *input.Source
	logger logger.Logger
}

// NewBase64Service creates a Base64Service reading input through source.
func NewBase64Service(source *input.Source, logger logger.Logger) (*Base64Service, error) {
	if source == nil {
		return nil, fmt.Errorf("input source cannot be nil")
	}
	return &Base64Service{source: source, logger: logger}, nil
}

// Encode returns the raw bytes of the input encoded in format.
func (s *Base64Service) Encode(ctx context.Context, inputPath string, format Base64Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := s.source.ReadAll(inputPath)
	if err != nil {
		return "", err
	}

	s.logger.Debug("Encoded ", len(data), " bytes as ", format, " base64")
	return format.encoding().EncodeToString(data), nil
}

// Decode decodes the input text in format. Surrounding whitespace is ignored.
func (s *Base64Service) Decode(ctx context.Context, inputPath string, format Base64Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := s.source.ReadAll(inputPath)
	if err != nil {
		return nil, err
	}

	data, err := format.encoding().DecodeString(strings.TrimSpace(string(text)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrInvalidEncoding, err)
	}
	return data, nil
}
