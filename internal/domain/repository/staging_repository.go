package repository

import (
	"context"
	"errors"
	"time"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrStageNotFound is returned when a staged record is missing, either on read or on
	// a conditional delete that matched no rows.
	ErrStageNotFound = errors.New("staged record not found")

	// ErrDuplicateStage is returned when a signup is already staged for the email.
	ErrDuplicateStage = errors.New("staged record already exists")
)

// SignupStageRepository stores pending registrants keyed by candidate email.
type SignupStageRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.StagedSignup, error)
	Create(ctx context.Context, stage *entity.StagedSignup) error

	// DeleteByEmail removes the staged signup and returns ErrStageNotFound when nothing
	// was deleted. Concurrent finalizes rely on this: only the first delete wins.
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteCreatedBefore removes every staged signup older than cutoff.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ResetStageRepository stores pending password resets keyed by their own id.
type ResetStageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StagedReset, error)
	Create(ctx context.Context, stage *entity.StagedReset) error

	// Delete removes the staged reset and returns ErrStageNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteCreatedBefore removes every staged reset older than cutoff.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
