package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BeginResetInput starts a password reset for an account email.
type BeginResetInput struct {
	Email string `json:"email" validate:"required"`
}

// BeginResetOutput carries the reset token the transport sets as the forget_token cookie.
type BeginResetOutput struct {
	ResetToken string
	ExpiresIn  time.Duration
}

// VerifyResetOutput identifies the account a reset token will change.
type VerifyResetOutput struct {
	AccountID uuid.UUID `json:"account_id"`
	Email     string    `json:"email"`
}

// FinalizeResetInput carries the new password.
type FinalizeResetInput struct {
	Password string `json:"password" validate:"required"`
}

// PasswordResetUsecase drives a reset request through staged verification before the
// credential changes.
type PasswordResetUsecase interface {
	BeginReset(ctx context.Context, input *BeginResetInput) (*BeginResetOutput, error)
	VerifyReset(ctx context.Context, resetToken string) (*VerifyResetOutput, error)
	FinalizeReset(ctx context.Context, resetToken string, input *FinalizeResetInput) error
}
