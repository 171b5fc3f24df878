package usecase

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in. Fields are not validated
// here: an empty or malformed email is a bad credential, not bad input.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput carries the session token the transport sets as the user_token cookie.
type LoginOutput struct {
	SessionToken string          `json:"-"`
	ExpiresIn    time.Duration   `json:"-"`
	Account      *entity.Account `json:"-"`
}

// SessionUsecase issues, validates and ends authenticated sessions.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves a session token to a live account.
	Authenticate(ctx context.Context, sessionToken string) (*entity.Account, error)

	// Logout requires a valid session. The token itself stays valid until it expires;
	// the caller clears the cookie.
	Logout(ctx context.Context, sessionToken string) error
}
