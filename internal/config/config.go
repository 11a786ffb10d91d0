// Package config loads the user's blacklist and application aliases, and the
// environment settings that tune the pipelines.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when the config file cannot be parsed.
var ErrInvalid = errors.New("invalid config file")

// Section and keys of the config file.
const (
	SectionOptions = "Options"
	KeyBlacklist   = "blacklist"
	KeyReplaceApps = "replace_apps"
)

// Config is the immutable user configuration.
type Config struct {
	blacklist []string
	aliases   []string
}

// New returns a Config holding copies of the given lists.
func New(blacklist, aliases []string) Config {
	return Config{
		blacklist: append([]string(nil), blacklist...),
		aliases:   append([]string(nil), aliases...),
	}
}

// Blacklist returns the substrings of launch commands that are never saved.
func (c Config) Blacklist() []string {
	return append([]string(nil), c.blacklist...)
}

// Aliases returns the executable names substituted for matching launch
// commands.
func (c Config) Aliases() []string {
	return append([]string(nil), c.aliases...)
}

// IsBlacklisted reports whether any blacklist entry occurs in command.
func (c Config) IsBlacklisted(command string) bool {
	for _, item := range c.blacklist {
		if strings.Contains(command, item) {
			return true
		}
	}
	return false
}

// ResolveAlias replaces command with the resolved path of every alias it
// contains. Some applications run under a process name unrelated to how they
// are started (Android Studio shows up as a Java process, for example).
func (c Config) ResolveAlias(command string, which func(string) string) string {
	for _, alias := range c.aliases {
		if strings.Contains(command, alias) {
			command = which(alias)
		}
	}
	return command
}

// fileConfig mirrors the on-disk layout of the TOML and YAML variants.
type fileConfig struct {
	Options fileOptions `toml:"Options" yaml:"options"`
}

type fileOptions struct {
	Blacklist   string `toml:"blacklist"    yaml:"blacklist"`
	ReplaceApps string `toml:"replace_apps" yaml:"replace_apps"`
}

// Load reads the config file at path, creating it with empty lists if it does
// not exist. The format follows the extension: .toml, .yaml/.yml, otherwise
// INI.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeDefault(path); err != nil {
			return Config{}, err
		}
		return Config{}, nil
	}

	var opts fileOptions
	var err error
	switch formatOf(path) {
	case "toml":
		opts, err = loadTOML(path)
	case "yaml":
		opts, err = loadYAML(path)
	default:
		opts, err = loadINI(path)
	}
	if err != nil {
		return Config{}, err
	}
	return New(strings.Fields(opts.Blacklist), strings.Fields(opts.ReplaceApps)), nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "ini"
	}
}

func loadINI(path string) (fileOptions, error) {
	f, err := ini.Load(path)
	if err != nil {
		return fileOptions{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	sec := f.Section(SectionOptions)
	return fileOptions{
		Blacklist:   sec.Key(KeyBlacklist).String(),
		ReplaceApps: sec.Key(KeyReplaceApps).String(),
	}, nil
}

func loadTOML(path string) (fileOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileOptions{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fileOptions{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return fc.Options, nil
}

func loadYAML(path string) (fileOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileOptions{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileOptions{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return fc.Options, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var data []byte
	var err error
	switch formatOf(path) {
	case "toml":
		data, err = toml.Marshal(fileConfig{})
	case "yaml":
		data, err = yaml.Marshal(fileConfig{})
	default:
		f := ini.Empty()
		sec, serr := f.NewSection(SectionOptions)
		if serr != nil {
			return fmt.Errorf("create config: %w", serr)
		}
		sec.Key(KeyBlacklist).SetValue("")
		sec.Key(KeyReplaceApps).SetValue("")
		if err := f.SaveTo(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
