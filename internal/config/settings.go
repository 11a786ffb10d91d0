package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment setting.
const EnvPrefix = "SESSIONCTL"

// Settings holds tuning knobs read from the environment.
type Settings struct {
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"warn"`
	SettleDelay  time.Duration `envconfig:"SETTLE_DELAY" default:"1s"`
	PollAttempts int           `envconfig:"POLL_ATTEMPTS" default:"10"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"200ms"`
}

// LoadSettings reads Settings from SESSIONCTL_* environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if s.SettleDelay < 0 {
		return Settings{}, fmt.Errorf("failed to load settings: negative settle delay %s", s.SettleDelay)
	}
	if s.PollAttempts < 1 {
		s.PollAttempts = 1
	}
	return s, nil
}
