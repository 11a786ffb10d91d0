package session

import (
	"context"
	"fmt"

	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform"
	"go.uber.org/zap"
)

// minCountedPID excludes the kernel and init from the running-process count.
const minCountedPID = 2

// OpenCounts returns how many windows are currently open per launch command.
func (m *Manager) OpenCounts(ctx context.Context) (map[string]int, error) {
	windows, err := m.provider.Reader.ListWindows(ctx, platform.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	counts := make(map[string]int)
	for _, w := range windows {
		if w.PID < minCountedPID {
			continue
		}
		cmdline, err := m.provider.Processes.CommandLine(w.PID)
		if err != nil {
			m.log.Debug("ignoring window, process command line unreadable",
				zap.String("window", w.ID), zap.Int("pid", w.PID), zap.Error(err))
			continue
		}
		counts[cmdline]++
	}
	return counts, nil
}

// Restore relaunches every saved application that is not already running and
// places its window on the saved desktop with the saved geometry. Each open
// window accounts for one saved record with the same launch command; windows
// that are already open are left where they are.
func (m *Manager) Restore(ctx context.Context) (Report, error) {
	var report Report

	counts, err := m.OpenCounts(ctx)
	if err != nil {
		return report, err
	}
	snap, err := m.Load()
	if err != nil {
		return report, err
	}

	m.log.Debug("session loaded", zap.Int("records", snap.Len()))
	if m.opts.DryRun {
		m.println("Dry run restore.")
	}

	for _, rec := range snap.Records() {
		if counts[rec.LaunchCommand] > 0 {
			counts[rec.LaunchCommand]--
			m.log.Debug("already running", zap.String("command", rec.LaunchCommand),
				zap.Int("remaining", counts[rec.LaunchCommand]))
			report.Skipped = append(report.Skipped, rec)
			continue
		}
		if err := m.relaunch(ctx, rec); err != nil {
			return report, err
		}
		report.Launched = append(report.Launched, rec)
	}
	return report, nil
}

func (m *Manager) relaunch(ctx context.Context, rec model.WindowRecord) error {
	title := rec.Title()

	m.printf("Launching %s ...\n", rec.LaunchCommand)
	if !m.opts.DryRun {
		if err := m.provider.Launcher.Launch(rec.LaunchCommand); err != nil {
			return fmt.Errorf("launch %q: %w", rec.LaunchCommand, err)
		}
	}
	if err := m.opts.Settler.Settle(ctx, title); err != nil {
		return err
	}

	// New windows open on whichever desktop is current, so the geometry is
	// applied first and the window is sent to its desktop afterwards.
	m.printf("Moving to 0,%s\n", rec.Coords())
	if !m.opts.DryRun {
		if err := m.provider.WindowManager.MoveResize(platform.TitleTarget(title), rec.Geometry); err != nil {
			return err
		}
	}
	if err := m.opts.Settler.Settle(ctx, ""); err != nil {
		return err
	}

	m.printf("Moving to workspace %d\n", rec.Desktop)
	if !m.opts.DryRun {
		if err := m.provider.WindowManager.MoveToDesktop(platform.ActiveTarget(), rec.Desktop); err != nil {
			return err
		}
	}
	m.println()
	return nil
}
