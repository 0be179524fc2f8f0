package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
app:
  page_url: https://dashboards.example.com/dashboards
api:
  base_url: https://api.example.com
  timeout: 3s
auth:
  identity_base_url: https://backend.example.com/api
  portal_base_url: https://www.example.com
  cookies:
    session: abc
forms:
  check_date_order: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://dashboards.example.com/dashboards", cfg.App.PageURL)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, defaultRequestRetries, cfg.API.RequestRetries)
	assert.Equal(t, defaultAuthTimeout, cfg.Auth.Timeout)
	assert.Equal(t, defaultTokenCookie, cfg.Auth.TokenCookie)
	assert.Equal(t, map[string]string{"session": "abc"}, cfg.Auth.Cookies)
	assert.Equal(t, defaultOptionsTTL, cfg.Cache.OptionsTTL)
	assert.True(t, cfg.Forms.CheckDateOrder)
	assert.Nil(t, cfg.Tracing)
}

func TestFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	tCases := []struct {
		name string
		data string
	}{
		{
			name: "unknown_field",
			data: "api:\n  base_url: http://x\n  unknown: 1\n",
		},
		{
			name: "no_api_base_url",
			data: "app:\n  page_url: http://localhost\n",
		},
	}

	for _, tCase := range tCases {
		path := filepath.Join(dir, tCase.name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(tCase.data), 0o600))

		_, err := FromFile(path)
		assert.Error(t, err, tCase.name)
	}

	_, err := FromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAPIBaseURL:      "http://api",
		EnvIdentityBaseURL: "http://id",
		EnvPortalBaseURL:   "http://portal",
		EnvPageURL:         "http://page",
		EnvSessionToken:    "jwt",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Config{}
	applyEnv(&cfg, lookup)

	assert.Equal(t, "http://api", cfg.API.BaseURL)
	assert.Equal(t, "http://id", cfg.Auth.IdentityBaseURL)
	assert.Equal(t, "http://portal", cfg.Auth.PortalBaseURL)
	assert.Equal(t, "http://page", cfg.App.PageURL)
	assert.Equal(t, "jwt", cfg.Auth.Cookies[defaultTokenCookie])
}

func TestExampleConfig(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "config", "config.example.yaml"))
	require.NoError(t, err)

	cfg, err := parse(data)
	require.NoError(t, err)
	require.NoError(t, setDefaults(&cfg))

	assert.Equal(t, "http://localhost:5173/dashboards", cfg.App.PageURL)
	assert.Nil(t, cfg.Cache.Redis)
	assert.Nil(t, cfg.Tracing)
	assert.False(t, cfg.Forms.CheckDateOrder)
}
