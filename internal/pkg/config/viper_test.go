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
app:
  server:
    http:
      address: ":8080"
      read_timeout_seconds: 15
    cors: "http://localhost:3000, ,https://fieldguard.dev "
jwt:
  ttl_minutes: 30
validation:
  status_code: 422
  message: "Validation error"
instrument:
  enabled: false
  trace_sample_ratio: 0.25
`

func TestNewViperFromBytes(t *testing.T) {
	t.Run("empty type", func(t *testing.T) {
		_, err := NewViperFromBytes(" ", []byte(testYAML))
		assert.Error(t, err)
	})

	t.Run("typed getters", func(t *testing.T) {
		cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.GetString("app.server.http.address"))
		assert.Equal(t, 15*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
		assert.Equal(t, 30*time.Minute, cfg.GetMinute("jwt.ttl_minutes"))
		assert.Equal(t, []string{"http://localhost:3000", "https://fieldguard.dev"}, cfg.GetArray("app.server.cors"))
		assert.Equal(t, 422, cfg.GetInt("validation.status_code"))
		assert.False(t, cfg.GetBool("instrument.enabled"))
		assert.InDelta(t, 0.25, cfg.GetFloat64("instrument.trace_sample_ratio"), 1e-9)
		assert.Nil(t, cfg.GetArray("maintenance.endpoints"))
		assert.Empty(t, cfg.GetString("missing.key"))
		assert.NoError(t, cfg.Close())
	})
}

func TestNewViper(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))

	cfg, err := NewViper(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Close() })

	assert.Equal(t, "Validation error", cfg.GetString("validation.message"))

	_, err = NewViper(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
