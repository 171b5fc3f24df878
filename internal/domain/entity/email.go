package entity

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

// MaxEmailLength is the longest address SMTP allows (RFC 5321 path limit minus brackets).
const MaxEmailLength = 254

// ErrInvalidEmail is returned by NormalizeEmail when the input is not a bare email address.
var ErrInvalidEmail = errors.New("invalid email address")

// NormalizeEmail trims and lower-cases raw and checks that it is a bare address.
// Display-name forms such as "Ann <ann@x.com>" are rejected.
func NormalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) > MaxEmailLength {
		return "", ErrInvalidEmail
	}

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil || parsed.Name != "" || parsed.Address != trimmed {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(parsed.Address), nil
}
