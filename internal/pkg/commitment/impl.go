package commitment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vreid/janken/internal/pkg/keygen"
)

func Commit(key keygen.SecretKey, message string) Tag {
	h := hmac.New(sha256.New, key.Bytes())
	h.Write([]byte(message))

	return Tag(hex.EncodeToString(h.Sum(nil)))
}

// Verify reports whether message under key reproduces tag. The comparison
// is constant time.
func Verify(key keygen.SecretKey, message string, tag Tag) bool {
	computed := Commit(key, message)

	return hmac.Equal([]byte(computed), []byte(tag))
}
