package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "sessionctrl"

// Paths locates the config and session files.
type Paths struct {
	ConfigFile  string
	SessionFile string
}

// DefaultPaths follows the XDG base directory layout:
// $XDG_CONFIG_HOME/sessionctrl/sessionctrl.conf and
// $XDG_DATA_HOME/sessionctrl/sessionctrl.info, falling back to ~/.config and
// ~/.local/share.
func DefaultPaths() (Paths, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	dataHome := os.Getenv("XDG_DATA_HOME")
	if configHome == "" || dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("resolve home directory: %w", err)
		}
		if configHome == "" {
			configHome = filepath.Join(home, ".config")
		}
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	return Paths{
		ConfigFile:  filepath.Join(configHome, appDir, "sessionctrl.conf"),
		SessionFile: filepath.Join(dataHome, appDir, "sessionctrl.info"),
	}, nil
}

// EnsureDirs creates the parent directories of both files.
func (p Paths) EnsureDirs() error {
	for _, f := range []string{p.ConfigFile, p.SessionFile} {
		if err := os.MkdirAll(filepath.Dir(f), 0755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(f), err)
		}
	}
	return nil
}
