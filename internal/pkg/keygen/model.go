package keygen

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const KeySize = 32

var ErrMalformedKey = errors.New("malformed secret key")

// SecretKey is the per-round HMAC key. It is revealed only after the human
// has committed to a move.
type SecretKey [KeySize]byte

func (k SecretKey) Bytes() []byte {
	return k[:]
}

func (k SecretKey) Hex() string {
	return hex.EncodeToString(k[:])
}

func (k SecretKey) String() string {
	return k.Hex()
}

// ParseSecretKey decodes a revealed key from its 64 character hex form.
func ParseSecretKey(s string) (SecretKey, error) {
	var key SecretKey

	if len(s) != hex.EncodedLen(KeySize) {
		return key, fmt.Errorf("%w: expected %d hex characters, got %d",
			ErrMalformedKey, hex.EncodedLen(KeySize), len(s))
	}

	_, err := hex.Decode(key[:], []byte(s))
	if err != nil {
		return key, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	return key, nil
}
