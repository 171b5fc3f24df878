package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind separates the three token families so one cannot stand in for another.
type TokenKind string

const (
	TokenKindSession TokenKind = "session"
	TokenKindSignup  TokenKind = "signup"
	TokenKindReset   TokenKind = "reset"
)

var (
	// ErrTokenMalformed covers unparsable tokens, bad signatures and tampered payloads.
	ErrTokenMalformed = errors.New("token malformed or tampered")

	// ErrTokenExpired is returned for a correctly signed token whose exp has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the signed payload. Only the field matching Kind is set:
// session tokens carry id, signup tokens dummyMail, reset tokens dummyId.
type Claims struct {
	Kind      TokenKind `json:"kind"`
	AccountID string    `json:"id,omitempty"`
	DummyMail string    `json:"dummyMail,omitempty"`
	DummyID   string    `json:"dummyId,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies compact, time-bound tokens with the process-wide secret.
type TokenCodec interface {
	// Sign encodes claims with an expiry ttl from now.
	Sign(claims *Claims, ttl time.Duration) (string, error)

	// Verify checks signature and expiry. It returns ErrTokenMalformed or
	// ErrTokenExpired on failure and never panics on hostile input.
	Verify(token string) (*Claims, error)
}
