package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/constants"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/lifecycle"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	sessions    usecase.SessionUsecase
	userRepo    repository.UserRepository
	broadcaster service.PresenceBroadcaster
	metrics     service.AuthMetrics
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Sessions    usecase.SessionUsecase
	UserRepo    repository.UserRepository
	Broadcaster service.PresenceBroadcaster
	Metrics     service.AuthMetrics
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		sessions:    params.Sessions,
		userRepo:    params.UserRepo,
		broadcaster: params.Broadcaster,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// GetProfile returns the account behind the session.
func (srv *profileService) GetProfile(ctx context.Context, sessionToken string) (*entity.Account, error) {
	account, err := srv.sessions.Authenticate(ctx, sessionToken)
	srv.metrics.Record(constants.FlowProfile, outcome("get", err))

	return account, err
}

// ChangeBio stores a new bio and then fans the change out to realtime subscribers.
// The broadcast runs detached from the request and its failure never undoes the write.
func (srv *profileService) ChangeBio(ctx context.Context, sessionToken string, input *usecase.ChangeBioInput) error {
	err := srv.changeBio(ctx, sessionToken, input)
	srv.metrics.Record(constants.FlowProfile, outcome("bio", err))

	return err
}

func (srv *profileService) changeBio(ctx context.Context, sessionToken string, input *usecase.ChangeBioInput) error {
	account, err := srv.sessions.Authenticate(ctx, sessionToken)
	if err != nil {
		return err
	}

	if !entity.BioFits(input.Bio) {
		srv.log(ctx).Debug("Bio rejected", slog.String("account_id", account.ID.String()))

		return errors.Wrapf(domainerrors.ErrInvalidInput, "bio exceeds %d characters", entity.MaxBioLength)
	}

	if err := srv.userRepo.UpdateBio(ctx, account.ID, input.Bio); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "account no longer exists")
		}

		return internalFailure(srv.log(ctx), constants.FlowProfile, "update bio", err)
	}

	srv.log(ctx).Info("Bio updated", slog.String("account_id", account.ID.String()))

	srv.broadcast(ctx, &service.ProfileUpdateEvent{
		RequestID: deliverycontext.RequestIDFrom(ctx),
		AccountID: account.ID.String(),
		Fields:    map[string]string{"bio": input.Bio},
		EmittedAt: time.Now().UTC(),
	})

	return nil
}

// broadcast emits the event on its own goroutine with a bounded context that outlives
// the request.
func (srv *profileService) broadcast(ctx context.Context, event *service.ProfileUpdateEvent) {
	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	go func() {
		ctx, cancel := context.WithTimeout(detached, lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.broadcaster.EmitProfileUpdate(ctx, event); err != nil {
			logger.Warn("Failed to broadcast profile update",
				slog.String("account_id", event.AccountID),
				slog.Any("error", err),
			)
		}
	}()
}
