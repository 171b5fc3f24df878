package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: gatehouse
  log:
    level: debug
http:
  port: 8080
secretKey:
  signing: ""
auth:
  bcryptCost: 10
  sessionTTL: 24h
  signupTTL: 30m
`

func TestValidate_RequiresSigningSecret(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.signing must be provided")
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := &Config{SecretKey: SecretKeyConfig{Signing: "secret"}}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, defaultSignupTTL, cfg.Auth.SignupTTL)
	assert.Equal(t, defaultResetTTL, cfg.Auth.ResetTTL)
	assert.Equal(t, defaultSweepInterval, cfg.Sweeper.Interval)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, defaultRelayPort, cfg.Relay.Port)
	assert.NotNil(t, cfg.Cookie)
	assert.NotNil(t, cfg.Mail)
	assert.NotNil(t, cfg.Migration)
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = "develop"
	assert.False(t, cfg.IsProduction())
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_SIGNING", "from-env")
	t.Setenv("AUTH_SIGNUPTTL", "2h")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "gatehouse", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Signing)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SignupTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file absent.yaml not found")
}
