package usecase

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
)

// --- Input DTOs ---

// BeginSignupInput starts a signup for a candidate email.
type BeginSignupInput struct {
	Email string `json:"email" validate:"required"`
}

// FinalizeSignupInput holds the account details collected on the last signup step.
type FinalizeSignupInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// BeginSignupOutput carries the signup token the transport sets as the auth_token cookie.
type BeginSignupOutput struct {
	SignupToken string
	Email       string
	ExpiresIn   time.Duration
}

// FinalizeSignupOutput holds the new account and a session token so the registrant is
// logged in straight away.
type FinalizeSignupOutput struct {
	Account      *entity.Account
	SessionToken string
	ExpiresIn    time.Duration
}

// VerifySignupOutput confirms which email the signup token is bound to.
type VerifySignupOutput struct {
	Email string `json:"email"`
}

// SignupUsecase drives a registrant through staged verification before an account exists.
type SignupUsecase interface {
	BeginSignup(ctx context.Context, input *BeginSignupInput) (*BeginSignupOutput, error)
	VerifySignup(ctx context.Context, signupToken string) (*VerifySignupOutput, error)
	FinalizeSignup(ctx context.Context, signupToken string, input *FinalizeSignupInput) (*FinalizeSignupOutput, error)
}
