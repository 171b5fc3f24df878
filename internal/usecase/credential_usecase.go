// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/errors"
)

// CredentialVerifier outcomes. Callers facing the outside world collapse all three
// into a single bad-credentials failure.
var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrCredentialNotFound = errors.New("no account for email")
	ErrPasswordMismatch   = errors.New("password mismatch")
)

// CredentialVerifier validates an email/password pair against the stored hash.
type CredentialVerifier interface {
	// Verify returns the matching account, or one of ErrInvalidEmailFormat,
	// ErrCredentialNotFound, ErrPasswordMismatch, or a wrapped store error.
	Verify(ctx context.Context, email, password string) (*entity.Account, error)
}
