package commitment

import "github.com/vreid/janken/internal/pkg/keygen"

// Tag is the lowercase hex HMAC-SHA-256 of a concealed message.
type Tag string

// Commitment pairs a published tag with the message it conceals. The message
// stays private until Reveal.
type Commitment struct {
	tag     Tag
	message string
}

func New(key keygen.SecretKey, message string) Commitment {
	return Commitment{
		tag:     Commit(key, message),
		message: message,
	}
}

func (c Commitment) Tag() Tag {
	return c.tag
}

func (c Commitment) Reveal() string {
	return c.message
}

func (c Commitment) Verify(key keygen.SecretKey) bool {
	return Verify(key, c.message, c.tag)
}
