package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var ErrEntropy = errors.New("secure random source unavailable")

// Generator draws secret keys from a cryptographically secure source.
type Generator struct {
	reader io.Reader
}

// New returns a Generator reading from r, or from crypto/rand when r is nil.
func New(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}

	return &Generator{
		reader: r,
	}
}

// Generate returns a fresh key. A failing source is not retried.
func (g *Generator) Generate() (SecretKey, error) {
	var key SecretKey

	_, err := io.ReadFull(g.reader, key[:])
	if err != nil {
		return SecretKey{}, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	return key, nil
}

func Generate() (SecretKey, error) {
	return New(nil).Generate()
}
