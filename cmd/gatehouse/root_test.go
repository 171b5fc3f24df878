package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "relay", "migrate"}, names)

	migrate, _, err := cmd.Find([]string{"migrate", "version"})
	require.NoError(t, err)
	assert.Equal(t, "version", migrate.Name())
}

func TestMigrateDown_RejectsBadSteps(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"migrate", "down", "1", "2"})

	assert.Error(t, cmd.Execute())
}

func TestServeOptions_GraphIsComplete(t *testing.T) {
	require.NoError(t, fx.ValidateApp(serveOptions()))
}

func TestRelayOptions_GraphIsComplete(t *testing.T) {
	require.NoError(t, fx.ValidateApp(relayOptions()))
}
