// Package sweeper periodically removes staged signups and resets whose tokens can no
// longer be redeemed.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/repository"

	"go.uber.org/fx"
)

// Sweeper deletes staged records older than their token lifetime.
type Sweeper struct {
	signups   repository.SignupStageRepository
	resets    repository.ResetStageRepository
	signupTTL time.Duration
	resetTTL  time.Duration
	interval  time.Duration
	logger    *slog.Logger
	now       func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Params holds dependencies for the Sweeper, injected by Fx
type Params struct {
	fx.In

	SignupRepo repository.SignupStageRepository
	ResetRepo  repository.ResetStageRepository
	Config     *config.Config
	Logger     *slog.Logger
}

func New(params Params) *Sweeper {
	return &Sweeper{
		signups:   params.SignupRepo,
		resets:    params.ResetRepo,
		signupTTL: params.Config.Auth.SignupTTL,
		resetTTL:  params.Config.Auth.ResetTTL,
		interval:  params.Config.Sweeper.Interval,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Start runs a sweep every interval until Stop is called.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Sweep runs one pass over both stage tables. Failures are logged and retried next tick.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.now()

	signups, err := s.signups.DeleteCreatedBefore(ctx, now.Add(-s.signupTTL))
	if err != nil {
		s.logger.Warn("Failed to sweep staged signups", slog.Any("error", err))
	}

	resets, err := s.resets.DeleteCreatedBefore(ctx, now.Add(-s.resetTTL))
	if err != nil {
		s.logger.Warn("Failed to sweep staged resets", slog.Any("error", err))
	}

	if signups > 0 || resets > 0 {
		s.logger.Info("Swept expired stages",
			slog.Int64("signups", signups),
			slog.Int64("resets", resets),
		)
	}
}

// Register hooks the sweeper into the application lifecycle when sweeper.enabled is set.
func Register(lc fx.Lifecycle, cfg *config.Config, s *Sweeper) {
	if !cfg.Sweeper.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.logger.Info("Starting stage sweeper", slog.Duration("interval", s.interval))
			s.Start(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			s.Stop()

			return nil
		},
	})
}

// Module provides the sweeper FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(Register),
)
