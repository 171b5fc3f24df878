package main

import (
	"context"

	"gatehouse/config"
	"gatehouse/internal/delivery/worker"
	"gatehouse/internal/delivery/worker/handler"
	logs "gatehouse/internal/infra/log"
	"gatehouse/internal/infra/notification"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// NewRelayCmd creates the relay subcommand.
func NewRelayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Start the relay that fans pushed profile updates out to devices",
		RunE: func(*cobra.Command, []string) error {
			return runApp(relayOptions())
		},
	}
}

func relayOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		notification.DeviceModule,
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	)
}
