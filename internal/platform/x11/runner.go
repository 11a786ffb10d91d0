package x11

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// runner executes external commands.
type runner interface {
	// Output runs the command to completion and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Start launches the command and returns without waiting for it.
	Start(name string, args ...string) error
}

type execRunner struct {
	log *zap.Logger
}

func (r execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.log.Debug("run", zap.String("cmd", name), zap.Strings("args", args))
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func (r execRunner) Start(name string, args ...string) error {
	r.log.Debug("start", zap.String("cmd", name), zap.Strings("args", args))
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	// Reap the child in the background so it does not linger as a zombie.
	go func() {
		if err := cmd.Wait(); err != nil {
			r.log.Debug("command exited", zap.String("cmd", name), zap.Error(err))
		}
	}()
	return nil
}
