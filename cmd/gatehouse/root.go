package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the gatehouse CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gatehouse",
		Short: "gatehouse - staged signup, password reset and session service",
		Long: `gatehouse verifies emails before accounts exist, resets passwords through
emailed links and issues cookie-borne session tokens.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewRelayCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
