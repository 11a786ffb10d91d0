package cmd

import (
	"fmt"

	"github.com/sessionctl/sessionctl/internal/session"
	"github.com/spf13/cobra"
)

// newManager builds a session manager from the parsed flags and settings.
func newManager(cmd *cobra.Command) (*session.Manager, error) {
	if app.provider == nil {
		return nil, fmt.Errorf("platform not initialized")
	}
	dryRun, _ := rootCmd.PersistentFlags().GetBool("dry-run")
	settler, err := newSettler()
	if err != nil {
		return nil, err
	}
	return session.New(app.provider, app.cfg, session.Options{
		SessionFile: app.paths.SessionFile,
		DryRun:      dryRun,
		Settler:     settler,
		Out:         cmd.OutOrStdout(),
		Logger:      app.log,
	}), nil
}

func newSettler() (session.Settler, error) {
	mode, _ := rootCmd.PersistentFlags().GetString("settle")
	fixed := session.FixedDelay{D: app.settings.SettleDelay}
	switch mode {
	case "", "fixed":
		return fixed, nil
	case "poll":
		if app.provider == nil {
			return nil, fmt.Errorf("platform not initialized")
		}
		return session.PollTitle{
			Reader:      app.provider.Reader,
			Interval:    app.settings.PollInterval,
			MaxAttempts: app.settings.PollAttempts,
			Fallback:    fixed,
			Logger:      app.log,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported settle strategy: %s (use fixed or poll)", mode)
	}
}
