package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, time.Second, s.SettleDelay)
	assert.Equal(t, 10, s.PollAttempts)
	assert.Equal(t, 200*time.Millisecond, s.PollInterval)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("SESSIONCTL_LOG_LEVEL", "debug")
	t.Setenv("SESSIONCTL_SETTLE_DELAY", "250ms")
	t.Setenv("SESSIONCTL_POLL_ATTEMPTS", "0")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 250*time.Millisecond, s.SettleDelay)
	assert.Equal(t, 1, s.PollAttempts)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("SESSIONCTL_SETTLE_DELAY", "soon")
	_, err := LoadSettings()
	assert.Error(t, err)

	t.Setenv("SESSIONCTL_SETTLE_DELAY", "-1s")
	_, err = LoadSettings()
	assert.Error(t, err)
}
