package x11

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrMissingDependency is returned when a required tool is not installed.
var ErrMissingDependency = errors.New("missing dependency")

// Dependencies are the tools the backend drives.
var Dependencies = []string{"wmctrl", "xprop"}

// DependencyTimeout bounds each presence check.
const DependencyTimeout = 5 * time.Second

// CheckDependencies verifies that every tool in Dependencies is on PATH.
func CheckDependencies(ctx context.Context) error {
	return checkDependencies(ctx, execRunner{log: zap.NewNop()}, DependencyTimeout)
}

func checkDependencies(ctx context.Context, run runner, timeout time.Duration) error {
	for _, name := range Dependencies {
		cctx, cancel := context.WithTimeout(ctx, timeout)
		_, err := run.Output(cctx, "which", name)
		expired := errors.Is(cctx.Err(), context.DeadlineExceeded)
		cancel()

		if expired {
			return fmt.Errorf("%w: timeout expired checking for %s", ErrMissingDependency, name)
		}
		if err != nil {
			return fmt.Errorf("%w: please install %s as it is a dependency", ErrMissingDependency, name)
		}
	}
	return nil
}
