package impl

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/constants"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	resetRepo   repository.ResetStageRepository
	codec       service.TokenCodec
	hasher      service.PasswordHasher
	notifier    service.Notifier
	metrics     service.AuthMetrics
	resetTTL    time.Duration
	linkBaseURL string
	now         func() time.Time
	logger      *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	ResetRepo repository.ResetStageRepository
	Codec     service.TokenCodec
	Hasher    service.PasswordHasher
	Notifier  service.Notifier
	Metrics   service.AuthMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	linkBaseURL := ""
	if params.Config.Mail != nil {
		linkBaseURL = params.Config.Mail.LinkBaseURL
	}

	return &passwordResetService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		resetRepo:   params.ResetRepo,
		codec:       params.Codec,
		hasher:      params.Hasher,
		notifier:    params.Notifier,
		metrics:     params.Metrics,
		resetTTL:    params.Config.Auth.ResetTTL,
		linkBaseURL: linkBaseURL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// BeginReset stages a reset for an existing account and mails the link. An unknown
// email is reported as ErrNotFound.
func (srv *passwordResetService) BeginReset(ctx context.Context, input *usecase.BeginResetInput) (*usecase.BeginResetOutput, error) {
	output, err := srv.beginReset(ctx, input)
	srv.record("begin", err)

	return output, err
}

func (srv *passwordResetService) beginReset(ctx context.Context, input *usecase.BeginResetInput) (*usecase.BeginResetOutput, error) {
	email, err := entity.NormalizeEmail(input.Email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}

	account, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil, errors.Wrap(domainerrors.ErrNotFound, "no account for email")
		}

		return nil, internalFailure(srv.log(ctx), constants.FlowReset, "find account by email", err)
	}

	stage := &entity.StagedReset{
		ID:        uuid.New(),
		AccountID: account.ID,
		CreatedAt: srv.now().UTC(),
	}
	if err := srv.resetRepo.Create(ctx, stage); err != nil {
		return nil, internalFailure(srv.log(ctx), constants.FlowReset, "create staged reset", err)
	}

	token, err := srv.codec.Sign(&service.Claims{
		Kind:    service.TokenKindReset,
		DummyID: stage.ID.String(),
	}, srv.resetTTL)
	if err != nil {
		if delErr := srv.resetRepo.Delete(ctx, stage.ID); delErr != nil {
			srv.log(ctx).Warn("Failed to drop staged reset", slog.Any("error", delErr))
		}

		return nil, internalFailure(srv.log(ctx), constants.FlowReset, "sign reset token", err)
	}

	subject, body := resetMessage(tokenLink(srv.linkBaseURL, resetVerifyPath, token), srv.resetTTL)
	notify(ctx, srv.log(ctx), srv.notifier, account.Email, subject, body)

	srv.log(ctx).Info("Password reset staged",
		slog.String("account_id", account.ID.String()),
		slog.String("reset_id", stage.ID.String()),
	)

	return &usecase.BeginResetOutput{
		ResetToken: token,
		ExpiresIn:  srv.resetTTL,
	}, nil
}

// VerifyReset confirms the reset token points at a pending reset of a live account.
func (srv *passwordResetService) VerifyReset(ctx context.Context, resetToken string) (*usecase.VerifyResetOutput, error) {
	_, account, err := srv.loadStage(ctx, resetToken)
	srv.record("verify", err)
	if err != nil {
		return nil, err
	}

	return &usecase.VerifyResetOutput{
		AccountID: account.ID,
		Email:     account.Email,
	}, nil
}

// FinalizeReset replaces the account's credential. The staged reset is deleted in the
// same transaction, so a reset token works once.
func (srv *passwordResetService) FinalizeReset(ctx context.Context, resetToken string, input *usecase.FinalizeResetInput) error {
	err := srv.finalizeReset(ctx, resetToken, input)
	srv.record("finalize", err)

	return err
}

func (srv *passwordResetService) finalizeReset(ctx context.Context, resetToken string, input *usecase.FinalizeResetInput) error {
	stage, account, err := srv.loadStage(ctx, resetToken)
	if err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return internalFailure(srv.log(ctx), constants.FlowReset, "hash password", err)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ResetStageRepo().Delete(ctx, stage.ID); err != nil {
			return errors.Wrap(err, "failed to delete staged reset")
		}

		return errors.Wrap(repoFactory.UserRepo().UpdateCredential(ctx, account.ID, hash), "failed to update credential")
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStageNotFound):
			return errors.Wrap(domainerrors.ErrStageNotFound, "reset already used or expired")
		case errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(domainerrors.ErrNotFound, "account no longer exists")
		default:
			return internalFailure(srv.log(ctx), constants.FlowReset, "finalize reset", err)
		}
	}

	srv.log(ctx).Info("Password reset", slog.String("account_id", account.ID.String()))

	return nil
}

func (srv *passwordResetService) loadStage(ctx context.Context, resetToken string) (*entity.StagedReset, *entity.Account, error) {
	claims, err := verifyKind(srv.codec, resetToken, service.TokenKindReset)
	if err != nil {
		return nil, nil, err
	}

	stageID, err := uuid.Parse(claims.DummyID)
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrUnauthenticated, "reset token carries no valid id")
	}

	stage, err := srv.resetRepo.FindByID(ctx, stageID)
	if err != nil {
		if errors.Is(err, repository.ErrStageNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrStageNotFound, "no pending reset")
		}

		return nil, nil, internalFailure(srv.log(ctx), constants.FlowReset, "find staged reset", err)
	}

	account, err := srv.userRepo.FindByID(ctx, stage.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "account no longer exists")
		}

		return nil, nil, internalFailure(srv.log(ctx), constants.FlowReset, "find account", err)
	}

	return stage, account, nil
}

func (srv *passwordResetService) record(step string, err error) {
	srv.metrics.Record(constants.FlowReset, outcome(step, err))
}
