package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sessionctl/sessionctl/internal/config"
	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/output"
	"github.com/sessionctl/sessionctl/internal/platform/platformtest"
	"github.com/sessionctl/sessionctl/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments against a private
// config and session file, and restores persistent flags afterwards. It
// returns stdout followed by stderr.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	stdout, stderr, err := executeSplit(t, dir, args...)
	return stdout + stderr, err
}

func executeSplit(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Cleanup(func() {
		pf := rootCmd.PersistentFlags()
		for name, def := range map[string]string{
			"format": "yaml", "verbose": "false", "pretty": "false",
			"config": "", "session": "", "settle": "fixed", "dry-run": "false",
		} {
			_ = pf.Set(name, def)
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		output.OutputFormat = output.FormatYAML
		output.PrettyOutput = false
		app = appState{}
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"save", "restore", "move", "list", "show", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_IsRunnable(t *testing.T) {
	if rootCmd.RunE == nil {
		t.Error("root command should dispatch the -s, -r and -m modes")
	}
}

func TestHelpAndCompletion_SkipDependencyCheck(t *testing.T) {
	// No platform is registered in this package, so any command that reaches
	// the dependency check fails with ErrUnsupported.
	for _, args := range [][]string{{"help"}, {"help", "save"}, {"completion", "bash"}} {
		out, err := execute(t, t.TempDir(), args...)
		require.NoError(t, err, "%v", args)
		assert.NotEmpty(t, out, "%v", args)
	}
}

func TestNeedsPlatform(t *testing.T) {
	assert.True(t, needsPlatform(saveCmd))
	assert.True(t, needsPlatform(listCmd))
	assert.True(t, needsPlatform(serveCmd))
	assert.False(t, needsPlatform(showCmd))
	assert.False(t, needsPlatform(rootCmd))
}

func TestShowCommand_VerboseKeepsJSONParseable(t *testing.T) {
	dir := t.TempDir()
	sessionFile := filepath.Join(dir, "saved.info")
	snap := model.Snapshot{}
	snap.Add(model.WindowRecord{Desktop: 0, PID: 4, LaunchCommand: "xterm", TitleToken: model.EncodeTitle("term")})
	require.NoError(t, model.SaveSnapshot(sessionFile, snap))

	stdout, stderr, err := executeSplit(t, dir, "show", "--verbose", "--format", "json", "--session", sessionFile)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Session file: "+sessionFile)

	var entries []output.SessionEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries), stdout)
	require.Len(t, entries, 1)
	assert.Equal(t, "term", entries[0].Title)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		flagType  string
	}{
		{"save", "s", "bool"},
		{"restore", "r", "bool"},
		{"move", "m", "bool"},
		{"dry-run", "d", "bool"},
		{"verbose", "", "bool"},
		{"config", "", "string"},
		{"session", "", "string"},
		{"settle", "", "string"},
		{"format", "", "string"},
	}

	for _, tt := range tests {
		f := rootCmd.Flags().Lookup(tt.name)
		if f == nil {
			f = rootCmd.PersistentFlags().Lookup(tt.name)
		}
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Shorthand != tt.shorthand {
			t.Errorf("flag %q: expected shorthand %q, got %q", tt.name, tt.shorthand, f.Shorthand)
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestRootCommand_NoModePrintsHelp(t *testing.T) {
	out, err := execute(t, t.TempDir())
	assert.True(t, errors.Is(err, errNoMode), "got %v", err)
	assert.Contains(t, out, "Usage:")
}

func TestRootCommand_ConflictingModes(t *testing.T) {
	_, err := execute(t, t.TempDir(), "-s", "-m")
	require.Error(t, err)
	for _, name := range []string{"save", "restore", "move"} {
		assert.NotEmpty(t, rootCmd.Flags().Lookup(name).Annotations["cobra_annotation_mutually_exclusive"], name)
	}
	for _, name := range []string{"save", "move"} {
		_ = rootCmd.Flags().Set(name, "false")
		rootCmd.Flags().Lookup(name).Changed = false
	}
}

func TestRootCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	_, _ = execute(t, dir)
	assert.FileExists(t, filepath.Join(dir, "config", "sessionctrl", "sessionctrl.conf"))
	assert.DirExists(t, filepath.Join(dir, "data", "sessionctrl"))
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	sessionFile := filepath.Join(dir, "saved.info")
	snap := model.Snapshot{}
	snap.Add(model.WindowRecord{Desktop: 1, PID: 4, Geometry: [4]int{1, 2, 3, 4},
		StateCommand: "add,hidden", LaunchCommand: "gedit", TitleToken: model.EncodeTitle("notes")})
	require.NoError(t, model.SaveSnapshot(sessionFile, snap))

	out, err := execute(t, dir, "show", "--session", sessionFile, "--format", "json")
	require.NoError(t, err)

	var entries []output.SessionEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "notes", entries[0].Title)
	assert.Equal(t, "add,hidden", entries[0].State)
}

func TestShowCommand_Verbose(t *testing.T) {
	dir := t.TempDir()
	sessionFile := filepath.Join(dir, "saved.info")
	require.NoError(t, model.SaveSnapshot(sessionFile, model.Snapshot{}))
	configFile := filepath.Join(dir, "custom.toml")

	out, err := execute(t, dir, "show", "--verbose", "--session", sessionFile, "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: "+configFile)
	assert.Contains(t, out, "Session file: "+sessionFile)
	assert.Contains(t, out, "blacklist: []")
	assert.FileExists(t, configFile)
}

func TestShowCommand_MissingSession(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "show", "--session", filepath.Join(dir, "none.info"))
	assert.True(t, errors.Is(err, model.ErrNoSnapshot), "got %v", err)
}

func TestRootCommand_BadFormat(t *testing.T) {
	_, err := execute(t, t.TempDir(), "show", "--format", "xml")
	assert.Error(t, err)
}

func TestNewSettler(t *testing.T) {
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("settle", "fixed")
		app = appState{}
	})
	fake := platformtest.NewFake()
	app = appState{
		settings: config.Settings{SettleDelay: 3 * time.Second, PollAttempts: 4, PollInterval: time.Millisecond},
		provider: fake.Provider(),
	}

	s, err := newSettler()
	require.NoError(t, err)
	assert.Equal(t, session.FixedDelay{D: 3 * time.Second}, s)

	require.NoError(t, rootCmd.PersistentFlags().Set("settle", "poll"))
	s, err = newSettler()
	require.NoError(t, err)
	poll, ok := s.(session.PollTitle)
	require.True(t, ok)
	assert.Equal(t, 4, poll.MaxAttempts)
	assert.Equal(t, session.FixedDelay{D: 3 * time.Second}, poll.Fallback)

	require.NoError(t, rootCmd.PersistentFlags().Set("settle", "eventually"))
	_, err = newSettler()
	assert.Error(t, err)
}
