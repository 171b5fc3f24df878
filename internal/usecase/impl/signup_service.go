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

// signupService implements the SignupUsecase interface.
type signupService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	signupRepo  repository.SignupStageRepository
	codec       service.TokenCodec
	hasher      service.PasswordHasher
	notifier    service.Notifier
	metrics     service.AuthMetrics
	signupTTL   time.Duration
	sessionTTL  time.Duration
	linkBaseURL string
	now         func() time.Time
	logger      *slog.Logger
}

// SignupServiceParams holds dependencies for SignupService, injected by Fx.
type SignupServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	SignupRepo repository.SignupStageRepository
	Codec      service.TokenCodec
	Hasher     service.PasswordHasher
	Notifier   service.Notifier
	Metrics    service.AuthMetrics
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSignupService is the constructor for signupService.
func NewSignupService(params SignupServiceParams) usecase.SignupUsecase {
	linkBaseURL := ""
	if params.Config.Mail != nil {
		linkBaseURL = params.Config.Mail.LinkBaseURL
	}

	return &signupService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		signupRepo:  params.SignupRepo,
		codec:       params.Codec,
		hasher:      params.Hasher,
		notifier:    params.Notifier,
		metrics:     params.Metrics,
		signupTTL:   params.Config.Auth.SignupTTL,
		sessionTTL:  params.Config.Auth.SessionTTL,
		linkBaseURL: linkBaseURL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *signupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// BeginSignup stages a registrant and mails them a verification link.
func (srv *signupService) BeginSignup(ctx context.Context, input *usecase.BeginSignupInput) (*usecase.BeginSignupOutput, error) {
	output, err := srv.beginSignup(ctx, input)
	srv.record("begin", err)

	return output, err
}

func (srv *signupService) beginSignup(ctx context.Context, input *usecase.BeginSignupInput) (*usecase.BeginSignupOutput, error) {
	email, err := entity.NormalizeEmail(input.Email)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}

	srv.log(ctx).Debug("Beginning signup", slog.String("email", email))

	_, err = srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrDuplicateCandidate, "email already registered")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, internalFailure(srv.log(ctx), constants.FlowSignup, "find account by email", err)
	}

	if err := srv.discardExpiredStage(ctx, email); err != nil {
		return nil, err
	}

	stage := &entity.StagedSignup{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: srv.now().UTC(),
	}
	if err := srv.signupRepo.Create(ctx, stage); err != nil {
		if errors.Is(err, repository.ErrDuplicateStage) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateCandidate, "signup already pending")
		}

		return nil, internalFailure(srv.log(ctx), constants.FlowSignup, "create staged signup", err)
	}

	token, err := srv.codec.Sign(&service.Claims{
		Kind:      service.TokenKindSignup,
		DummyMail: email,
	}, srv.signupTTL)
	if err != nil {
		// Without a token the stage is unreachable; drop it so the email can retry.
		if delErr := srv.signupRepo.DeleteByEmail(ctx, email); delErr != nil {
			srv.log(ctx).Warn("Failed to drop staged signup", slog.Any("error", delErr))
		}

		return nil, internalFailure(srv.log(ctx), constants.FlowSignup, "sign signup token", err)
	}

	subject, body := signupMessage(tokenLink(srv.linkBaseURL, signupVerifyPath, token), srv.signupTTL)
	notify(ctx, srv.log(ctx), srv.notifier, email, subject, body)

	srv.log(ctx).Info("Signup staged", slog.String("email", email))

	return &usecase.BeginSignupOutput{
		SignupToken: token,
		Email:       email,
		ExpiresIn:   srv.signupTTL,
	}, nil
}

// discardExpiredStage removes a stage left behind past its TTL that the sweeper has
// not reached yet. A live stage is a duplicate.
func (srv *signupService) discardExpiredStage(ctx context.Context, email string) error {
	existing, err := srv.signupRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStageNotFound) {
			return nil
		}

		return internalFailure(srv.log(ctx), constants.FlowSignup, "find staged signup", err)
	}

	if !entity.ExpiredAt(existing.CreatedAt, srv.signupTTL, srv.now()) {
		return errors.Wrap(domainerrors.ErrDuplicateCandidate, "signup already pending")
	}

	if err := srv.signupRepo.DeleteByEmail(ctx, email); err != nil && !errors.Is(err, repository.ErrStageNotFound) {
		return internalFailure(srv.log(ctx), constants.FlowSignup, "delete expired staged signup", err)
	}

	return nil
}

// VerifySignup confirms the signup token still points at a staged registrant.
func (srv *signupService) VerifySignup(ctx context.Context, signupToken string) (*usecase.VerifySignupOutput, error) {
	stage, err := srv.loadStage(ctx, signupToken)
	srv.record("verify", err)
	if err != nil {
		return nil, err
	}

	return &usecase.VerifySignupOutput{Email: stage.Email}, nil
}

// FinalizeSignup turns the staged registrant into an account. The staged record is
// deleted in the same transaction; when two finalizes race only the first delete
// succeeds and the loser gets ErrStageNotFound.
func (srv *signupService) FinalizeSignup(
	ctx context.Context,
	signupToken string,
	input *usecase.FinalizeSignupInput,
) (*usecase.FinalizeSignupOutput, error) {
	output, err := srv.finalizeSignup(ctx, signupToken, input)
	srv.record("finalize", err)

	return output, err
}

func (srv *signupService) finalizeSignup(
	ctx context.Context,
	signupToken string,
	input *usecase.FinalizeSignupInput,
) (*usecase.FinalizeSignupOutput, error) {
	stage, err := srv.loadStage(ctx, signupToken)
	if err != nil {
		return nil, err
	}

	username, err := validateUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	// bcrypt is CPU-bound, keep it out of the transaction.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, internalFailure(srv.log(ctx), constants.FlowSignup, "hash password", err)
	}

	account := &entity.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        stage.Email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SignupStageRepo().DeleteByEmail(ctx, stage.Email); err != nil {
			return errors.Wrap(err, "failed to delete staged signup")
		}

		return errors.Wrap(repoFactory.UserRepo().Create(ctx, account), "failed to create account")
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStageNotFound):
			return nil, errors.Wrap(domainerrors.ErrStageNotFound, "signup already finalized or expired")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, errors.Wrap(domainerrors.ErrDuplicateCandidate, "email already registered")
		default:
			return nil, internalFailure(srv.log(ctx), constants.FlowSignup, "finalize signup", err)
		}
	}

	token, err := signSession(srv.codec, account.ID, srv.sessionTTL)
	if err != nil {
		return nil, internalFailure(srv.log(ctx), constants.FlowSignup, "sign session token", err)
	}

	srv.log(ctx).Info("Account created", slog.String("account_id", account.ID.String()))

	return &usecase.FinalizeSignupOutput{
		Account:      account,
		SessionToken: token,
		ExpiresIn:    srv.sessionTTL,
	}, nil
}

func (srv *signupService) loadStage(ctx context.Context, signupToken string) (*entity.StagedSignup, error) {
	claims, err := verifyKind(srv.codec, signupToken, service.TokenKindSignup)
	if err != nil {
		return nil, err
	}
	if claims.DummyMail == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "signup token carries no email")
	}

	stage, err := srv.signupRepo.FindByEmail(ctx, claims.DummyMail)
	if err != nil {
		if errors.Is(err, repository.ErrStageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStageNotFound, "no pending signup")
		}

		return nil, internalFailure(srv.log(ctx), constants.FlowSignup, "find staged signup", err)
	}

	return stage, nil
}

func (srv *signupService) record(step string, err error) {
	srv.metrics.Record(constants.FlowSignup, outcome(step, err))
}
