// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a lookup or update matches no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned by Create when the email already belongs to an account.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository stores confirmed accounts. Every lookup returns at most one
// account; absence is signalled with ErrUserNotFound.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. ID and timestamps are filled in on success.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateBio replaces the bio of an existing account.
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) error

	// UpdateCredential replaces the password hash of an existing account.
	UpdateCredential(ctx context.Context, id uuid.UUID, passwordHash string) error
}
