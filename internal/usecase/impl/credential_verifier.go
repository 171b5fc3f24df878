package impl

import (
	"context"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type credentialVerifier struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
}

// CredentialVerifierParams holds dependencies for CredentialVerifier, injected by Fx.
type CredentialVerifierParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

// NewCredentialVerifier is the constructor for credentialVerifier.
func NewCredentialVerifier(params CredentialVerifierParams) usecase.CredentialVerifier {
	return &credentialVerifier{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
	}
}

// Verify checks an email/password pair. An unknown email still pays for one bcrypt
// comparison so response time does not reveal whether the account exists.
func (v *credentialVerifier) Verify(ctx context.Context, email, password string) (*entity.Account, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, usecase.ErrInvalidEmailFormat
	}

	account, err := v.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			v.hasher.Check(password, v.hasher.DummyHash())

			return nil, usecase.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !v.hasher.Check(password, account.PasswordHash) {
		return nil, usecase.ErrPasswordMismatch
	}

	return account, nil
}
