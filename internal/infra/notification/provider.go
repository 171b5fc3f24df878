package notification

import (
	"context"
	"log/slog"

	"gatehouse/config"
	"gatehouse/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier opens the configured mail queue and closes it on shutdown.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	notifier, err := NewMailQueueNotifier(params.Ctx, params.Config.Mail, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing mail queue")

			return notifier.Close()
		},
	})

	return notifier, nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)

// DeviceBroadcasterParams holds dependencies for the relay's device broadcaster
type DeviceBroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDeviceBroadcaster returns the Firebase broadcaster the relay fans out through.
func NewDeviceBroadcaster(params DeviceBroadcasterParams) (service.PresenceBroadcaster, error) {
	fb := params.Config.Firebase
	if fb == nil {
		return nil, errors.New("firebase section is required for the relay")
	}

	broadcaster, err := NewFirebaseBroadcaster(params.Ctx, fb.ProjectID, fb.CredentialsPath, fb.TopicPrefix, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return broadcaster.Close()
		},
	})

	return broadcaster, nil
}

// DeviceModule provides the relay's PresenceBroadcaster
//
//nolint:gochecknoglobals
var DeviceModule = fx.Options(
	fx.Provide(NewDeviceBroadcaster),
)
