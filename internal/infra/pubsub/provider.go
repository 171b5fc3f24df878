package pubsub

import (
	"context"
	"log/slog"

	"gatehouse/config"
	"gatehouse/internal/domain/constants"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/infra/notification"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopBroadcaster is used when no provider is configured
type noopBroadcaster struct {
	logger *slog.Logger
}

func (b *noopBroadcaster) EmitProfileUpdate(_ context.Context, event *service.ProfileUpdateEvent) error {
	b.logger.Debug("[NoopPubSub] Broadcasting disabled, skipping",
		slog.String("account_id", event.AccountID),
	)

	return nil
}

func (b *noopBroadcaster) Close() error {
	return nil
}

// BroadcasterParams holds dependencies for PresenceBroadcaster, injected by Fx
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPresenceBroadcaster creates a PresenceBroadcaster based on pubsub.provider
func NewPresenceBroadcaster(params BroadcasterParams) (service.PresenceBroadcaster, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op broadcaster")

		return &noopBroadcaster{logger: logger}, nil
	}

	broadcaster, err := newProvider(params.Ctx, params.Config, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing PresenceBroadcaster")

			return broadcaster.Close()
		},
	})

	return broadcaster, nil
}

func newProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PresenceBroadcaster, error) {
	ps := cfg.PubSub

	switch ps.Provider {
	case constants.PubSubProviderLocal:
		if ps.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP broadcaster", slog.String("endpoint", ps.LocalEndpoint))

		return NewLocalHTTPPublisher(ps.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if ps.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	case constants.PubSubProviderFirebase:
		if cfg.Firebase == nil {
			return nil, errors.New("firebase section is required for firebase provider")
		}
		logger.Info("Using Firebase topic broadcaster",
			slog.String("project_id", cfg.Firebase.ProjectID),
			slog.String("topic_prefix", cfg.Firebase.TopicPrefix),
		)

		return notification.NewFirebaseBroadcaster(
			ctx,
			cfg.Firebase.ProjectID,
			cfg.Firebase.CredentialsPath,
			cfg.Firebase.TopicPrefix,
			logger,
		)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", ps.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPresenceBroadcaster),
)
