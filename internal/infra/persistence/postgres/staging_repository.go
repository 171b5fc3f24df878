package postgres

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// signupStageRepository implements the domain.SignupStageRepository interface using GORM.
type signupStageRepository struct {
	db *gorm.DB
}

// NewSignupStageRepository is the constructor for signupStageRepository.
func NewSignupStageRepository(db *gorm.DB) repository.SignupStageRepository {
	return &signupStageRepository{db: db}
}

func (repo *signupStageRepository) FindByEmail(ctx context.Context, email string) (*entity.StagedSignup, error) {
	var stageM model.StagedSignupModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&stageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStageNotFound
		}

		return nil, errors.Wrap(err, "failed to find staged signup")
	}

	return &entity.StagedSignup{ID: stageM.ID, Email: stageM.Email, CreatedAt: stageM.CreatedAt}, nil
}

func (repo *signupStageRepository) Create(ctx context.Context, stage *entity.StagedSignup) error {
	stageM := &model.StagedSignupModel{ID: stage.ID, Email: stage.Email, CreatedAt: stage.CreatedAt}

	if err := repo.db.WithContext(ctx).Create(stageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStage
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staged signup")
	}

	stage.CreatedAt = stageM.CreatedAt

	return nil
}

// DeleteByEmail is the conditional delete concurrent finalizes race on.
func (repo *signupStageRepository) DeleteByEmail(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).Where("email = ?", email).Delete(&model.StagedSignupModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete staged signup")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStageNotFound
	}

	return nil
}

func (repo *signupStageRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.StagedSignupModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to sweep staged signups")
	}

	return result.RowsAffected, nil
}

// resetStageRepository implements the domain.ResetStageRepository interface using GORM.
type resetStageRepository struct {
	db *gorm.DB
}

// NewResetStageRepository is the constructor for resetStageRepository.
func NewResetStageRepository(db *gorm.DB) repository.ResetStageRepository {
	return &resetStageRepository{db: db}
}

func (repo *resetStageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StagedReset, error) {
	var stageM model.StagedResetModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&stageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStageNotFound
		}

		return nil, errors.Wrap(err, "failed to find staged reset")
	}

	return &entity.StagedReset{ID: stageM.ID, AccountID: stageM.AccountID, CreatedAt: stageM.CreatedAt}, nil
}

func (repo *resetStageRepository) Create(ctx context.Context, stage *entity.StagedReset) error {
	stageM := &model.StagedResetModel{ID: stage.ID, AccountID: stage.AccountID, CreatedAt: stage.CreatedAt}

	if err := repo.db.WithContext(ctx).Create(stageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create staged reset")
	}

	stage.CreatedAt = stageM.CreatedAt

	return nil
}

func (repo *resetStageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StagedResetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete staged reset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStageNotFound
	}

	return nil
}

func (repo *resetStageRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.StagedResetModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to sweep staged resets")
	}

	return result.RowsAffected, nil
}
