package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: gearshop
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
    writeTimeout: 10s
gateway:
  provider: memory
  pollInterval: 2s
auth:
  provider: local
  localSecret: test-secret
cart:
  dir: /tmp/carts
  namespace: test-cart
`

func writeConfig(t *testing.T, content string) {
	t.Helper()
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0o644))
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, testYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "gearshop", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Gateway)
	assert.Equal(t, "memory", cfg.Gateway.Provider)
	assert.Equal(t, 2*time.Second, cfg.Gateway.PollInterval)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "test-secret", cfg.Auth.LocalSecret)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("GATEWAY_PROVIDER", "firebase")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "firebase", cfg.Gateway.Provider)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Gateway)
	assert.Equal(t, "memory", cfg.Gateway.Provider)
	require.NotNil(t, cfg.Cart)
	assert.Equal(t, "data/carts", cfg.Cart.Dir)
	assert.Equal(t, "gearshop-cart", cfg.Cart.Namespace)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "local", cfg.Auth.Provider)
}
