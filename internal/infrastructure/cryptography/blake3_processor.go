package cryptography

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/crypto-text/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-text/internal/pkg/logger"

	"lukechampine.com/blake3"
)

var _ cryptoalg.SignVerifier = (*Blake3Processor)(nil)
var _ cryptoalg.KeyGenerator = (*Blake3KeyGenerator)(nil)

// Blake3Processor signs and verifies with the BLAKE3 keyed hash.
// The same 32-byte key is used in both directions.
type Blake3Processor struct {
	key    [cryptoalg.Blake3KeySize]byte
	logger logger.Logger
}

// NewBlake3Processor creates a Blake3Processor from a 32-byte key.
func NewBlake3Processor(key []byte, logger logger.Logger) (*Blake3Processor, error) {
	if len(key) != cryptoalg.Blake3KeySize {
		return nil, fmt.Errorf("%w: blake3 key must be %d bytes, got %d", cryptoalg.ErrInvalidKeyLength, cryptoalg.Blake3KeySize, len(key))
	}

	p := &Blake3Processor{logger: logger}
	copy(p.key[:], key)
	return p, nil
}

// LoadBlake3Processor reads a raw 32-byte key from keyPath.
func LoadBlake3Processor(keyPath string, logger logger.Logger) (*Blake3Processor, error) {
	key, err := readKeyFile(keyPath, cryptoalg.Blake3KeySize, cryptoalg.ErrInvalidKeyLength)
	if err != nil {
		return nil, err
	}
	return NewBlake3Processor(key, logger)
}

func (p *Blake3Processor) digest(r io.Reader) ([]byte, error) {
	h := blake3.New(cryptoalg.Blake3DigestSize, p.key[:])
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	return h.Sum(nil), nil
}

// Sign returns the 32-byte keyed digest of the stream.
func (p *Blake3Processor) Sign(r io.Reader) ([]byte, error) {
	sum, err := p.digest(r)
	if err != nil {
		return nil, err
	}

	p.logger.Info("BLAKE3 signing succeeded")
	return sum, nil
}

// Verify recomputes the keyed digest and compares it with signature in constant time.
// A signature of the wrong length never matches.
func (p *Blake3Processor) Verify(r io.Reader, signature []byte) (bool, error) {
	sum, err := p.digest(r)
	if err != nil {
		return false, err
	}

	valid := subtle.ConstantTimeCompare(sum, signature) == 1
	p.logger.Info("BLAKE3 verification completed, valid: ", valid)
	return valid, nil
}

// Character classes of printable BLAKE3 keys. Lookalike characters are left out.
const (
	upperChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars  = "abcdefghijkmnopqrstuvwxyz"
	digitChars  = "123456789"
	symbolChars = "!@#$%^&*_"
)

// Blake3KeyGenerator produces BLAKE3 keys.
type Blake3KeyGenerator struct {
	mode   string
	random io.Reader
	logger logger.Logger
}

// NewBlake3KeyGenerator creates a generator for the given key mode
// (cryptoalg.KeyModeRaw or cryptoalg.KeyModePrintable).
func NewBlake3KeyGenerator(mode string, logger logger.Logger) (*Blake3KeyGenerator, error) {
	switch mode {
	case cryptoalg.KeyModeRaw, cryptoalg.KeyModePrintable:
	default:
		return nil, fmt.Errorf("unsupported blake3 key mode: %q", mode)
	}

	return &Blake3KeyGenerator{
		mode:   mode,
		random: rand.Reader,
		logger: logger,
	}, nil
}

// Generate returns a single 32-byte key.
func (g *Blake3KeyGenerator) Generate() ([][]byte, error) {
	var (
		key []byte
		err error
	)
	if g.mode == cryptoalg.KeyModePrintable {
		key, err = g.printableKey(cryptoalg.Blake3KeySize)
	} else {
		key, err = randomBytes(g.random, cryptoalg.Blake3KeySize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate blake3 key: %w", err)
	}

	g.logger.Info("Generated BLAKE3 key, mode: ", g.mode)
	return [][]byte{key}, nil
}

// printableKey builds a password-style key holding at least one character of every class.
func (g *Blake3KeyGenerator) printableKey(length int) ([]byte, error) {
	classes := []string{upperChars, lowerChars, digitChars, symbolChars}
	all := upperChars + lowerChars + digitChars + symbolChars

	key := make([]byte, 0, length)
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return nil, err
		}
		key = append(key, c)
	}
	for len(key) < length {
		c, err := g.pick(all)
		if err != nil {
			return nil, err
		}
		key = append(key, c)
	}

	// Fisher-Yates, so the class characters do not sit at fixed positions
	for i := len(key) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return nil, err
		}
		key[i], key[j] = key[j], key[i]
	}

	return key, nil
}

func (g *Blake3KeyGenerator) pick(chars string) (byte, error) {
	i, err := g.intn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

func (g *Blake3KeyGenerator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return int(v.Int64()), nil
}
