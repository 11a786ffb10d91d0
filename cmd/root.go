package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sessionctl/sessionctl/internal/config"
	"github.com/sessionctl/sessionctl/internal/logging"
	"github.com/sessionctl/sessionctl/internal/output"
	"github.com/sessionctl/sessionctl/internal/platform"
	"github.com/sessionctl/sessionctl/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoMode is returned when the root command is run without -s, -r or -m.
var errNoMode = errors.New("no mode selected: use -s, -r or -m")

// offlineAnnotation marks commands that do not talk to the X server.
const offlineAnnotation = "sessionctl/offline"

// appState is built once per invocation by the root PersistentPreRunE.
type appState struct {
	settings config.Settings
	paths    config.Paths
	cfg      config.Config
	provider *platform.Provider
	log      *zap.Logger
}

var app appState

var rootCmd = &cobra.Command{
	Use:   "sessionctl",
	Short: "Save and restore the window layout of an X11 desktop",
	Long: `Save the open windows of an X11 desktop (desktop, geometry and maximized or
hidden state) and restore them later, relaunching applications that are not
running or moving windows that already are.

Requires wmctrl and xprop.

Examples:
  sessionctl -s            save the current session
  sessionctl -r            relaunch missing applications
  sessionctl -m -d         show how open windows would be moved`,
	SilenceUsage: true,
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	rootCmd.Flags().BoolP("save", "s", false, "Save the current session")
	rootCmd.Flags().BoolP("restore", "r", false, "Restore the saved session, launching missing applications")
	rootCmd.Flags().BoolP("move", "m", false, "Move open windows to their saved positions")
	rootCmd.MarkFlagsMutuallyExclusive("save", "restore", "move")

	pf := rootCmd.PersistentFlags()
	pf.BoolP("dry-run", "d", false, "Print intended actions without changing anything")
	pf.Bool("verbose", false, "Print configuration and enable debug logging")
	pf.String("config", "", "Config file (.conf INI, .toml or .yaml)")
	pf.String("session", "", "Session file")
	pf.String("settle", "fixed", "How to wait for the window manager: fixed, poll")
	pf.String("format", "yaml", "Output format for list and show: yaml, json")
	pf.Bool("pretty", false, "Pretty-print JSON output")

	rootCmd.PersistentPreRunE = setup
	rootCmd.RunE = runRoot
}

// setup loads settings and configuration, then connects to the platform
// unless the command works offline.
func setup(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	level := settings.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Development: true})
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	format, _ := rootCmd.PersistentFlags().GetString("format")
	if output.OutputFormat, err = output.ParseFormat(format); err != nil {
		return err
	}
	output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

	paths, err := resolvePaths()
	if err != nil {
		return err
	}
	if err := paths.EnsureDirs(); err != nil {
		return err
	}
	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return err
	}

	app = appState{settings: settings, paths: paths, cfg: cfg, log: logger}

	// stdout carries the MCP protocol when serving, and parseable output for
	// list and show.
	if verbose && cmd != serveCmd {
		out := cmd.OutOrStdout()
		if cmd == listCmd || cmd == showCmd {
			out = cmd.ErrOrStderr()
		}
		fmt.Fprintf(out, "Config file: %s\n", paths.ConfigFile)
		fmt.Fprintf(out, "Session file: %s\n", paths.SessionFile)
		fmt.Fprintf(out, "blacklist: %v\n", cfg.Blacklist())
		fmt.Fprintf(out, "replace_apps: %v\n\n", cfg.Aliases())
	}

	if !needsPlatform(cmd) {
		return nil
	}

	if err := platform.CheckDependencies(commandContext(cmd)); err != nil {
		return err
	}
	provider, err := platform.NewProvider(platform.ProviderOptions{Logger: logger})
	if err != nil {
		return err
	}
	app.provider = provider
	return nil
}

// needsPlatform reports whether cmd talks to the X server. Offline commands,
// cobra's help and completion commands, and the bare root without a mode do
// not.
func needsPlatform(cmd *cobra.Command) bool {
	if cmd.Annotations[offlineAnnotation] == "true" || !cmd.Runnable() {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return false
		}
	}
	if cmd == rootCmd && selectedMode(cmd) == "" {
		return false
	}
	return true
}

func resolvePaths() (config.Paths, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return config.Paths{}, err
	}
	if p, _ := rootCmd.PersistentFlags().GetString("config"); p != "" {
		paths.ConfigFile = p
	}
	if p, _ := rootCmd.PersistentFlags().GetString("session"); p != "" {
		paths.SessionFile = p
	}
	return paths, nil
}

// selectedMode returns the root mode flag that is set, if any.
func selectedMode(cmd *cobra.Command) string {
	for _, name := range []string{"save", "restore", "move"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if on, _ := cmd.Flags().GetBool(name); on {
				return name
			}
		}
	}
	return ""
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch selectedMode(cmd) {
	case "save":
		return runSave(cmd, args)
	case "restore":
		return runRestore(cmd, args)
	case "move":
		return runMove(cmd, args)
	default:
		_ = cmd.Help()
		return errNoMode
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
