package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"
)

// ChangeBioInput defines the new bio text.
type ChangeBioInput struct {
	Bio string `json:"bio"`
}

// ProfileUsecase defines the interface for profile-related business operations.
// Every call is gated by a session token.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, sessionToken string) (*entity.Account, error)
	ChangeBio(ctx context.Context, sessionToken string, input *ChangeBioInput) error
}
