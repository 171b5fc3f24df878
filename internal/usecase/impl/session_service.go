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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo   repository.UserRepository
	verifier   usecase.CredentialVerifier
	codec      service.TokenCodec
	metrics    service.AuthMetrics
	sessionTTL time.Duration
	logger     *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Verifier usecase.CredentialVerifier
	Codec    service.TokenCodec
	Metrics  service.AuthMetrics
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:   params.UserRepo,
		verifier:   params.Verifier,
		codec:      params.Codec,
		metrics:    params.Metrics,
		sessionTTL: params.Config.Auth.SessionTTL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Login verifies the credentials and issues a session token. Every credential
// problem is reported as ErrBadCredentials so callers cannot tell them apart.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.verifier.Verify(ctx, input.Email, input.Password)
	if err != nil {
		if isCredentialRejection(err) {
			srv.log(ctx).Info("Login rejected", slog.String("reason", err.Error()))
			srv.metrics.Record(constants.FlowLogin, "bad_credentials")

			return nil, errors.Wrap(domainerrors.ErrBadCredentials, err.Error())
		}

		srv.metrics.Record(constants.FlowLogin, "error")

		return nil, internalFailure(srv.log(ctx), constants.FlowLogin, "verify credentials", err)
	}

	token, err := signSession(srv.codec, account.ID, srv.sessionTTL)
	if err != nil {
		srv.metrics.Record(constants.FlowLogin, "error")

		return nil, internalFailure(srv.log(ctx), constants.FlowLogin, "sign session token", err)
	}

	srv.log(ctx).Info("User logged in", slog.String("account_id", account.ID.String()))
	srv.metrics.Record(constants.FlowLogin, "ok")

	return &usecase.LoginOutput{
		SessionToken: token,
		ExpiresIn:    srv.sessionTTL,
		Account:      account,
	}, nil
}

// Authenticate resolves a session token to the account it was issued for.
func (srv *sessionService) Authenticate(ctx context.Context, sessionToken string) (*entity.Account, error) {
	account, err := srv.resolve(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			srv.log(ctx).Debug("Session rejected", slog.String("reason", err.Error()))
			srv.metrics.Record(constants.FlowSession, "unauthenticated")
		} else {
			srv.metrics.Record(constants.FlowSession, "error")
		}

		return nil, err
	}

	srv.metrics.Record(constants.FlowSession, "ok")

	return account, nil
}

// Logout only confirms the caller holds a live session. Tokens are stateless, so the
// token stays valid until it expires; the transport drops the cookie.
func (srv *sessionService) Logout(ctx context.Context, sessionToken string) error {
	account, err := srv.resolve(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			srv.metrics.Record(constants.FlowLogout, "unauthenticated")
		} else {
			srv.metrics.Record(constants.FlowLogout, "error")
		}

		return err
	}

	srv.log(ctx).Info("User logged out", slog.String("account_id", account.ID.String()))
	srv.metrics.Record(constants.FlowLogout, "ok")

	return nil
}

func (srv *sessionService) resolve(ctx context.Context, sessionToken string) (*entity.Account, error) {
	claims, err := verifyKind(srv.codec, sessionToken, service.TokenKindSession)
	if err != nil {
		return nil, err
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session token carries no valid account id")
	}

	account, err := srv.userRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "account no longer exists")
		}

		return nil, internalFailure(srv.log(ctx), constants.FlowSession, "find account", err)
	}

	return account, nil
}

func isCredentialRejection(err error) bool {
	return errors.Is(err, usecase.ErrInvalidEmailFormat) ||
		errors.Is(err, usecase.ErrCredentialNotFound) ||
		errors.Is(err, usecase.ErrPasswordMismatch)
}
