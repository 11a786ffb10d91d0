package session

import (
	"context"
	"fmt"

	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform"
	"go.uber.org/zap"
)

// Capture records every open user window into a snapshot and writes it to
// the session file, replacing any previous snapshot. In dry-run mode the
// snapshot is built but not written.
func (m *Manager) Capture(ctx context.Context) (model.Snapshot, error) {
	windows, err := m.provider.Reader.ListWindows(ctx, platform.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	snap := model.Snapshot{}
	for _, w := range windows {
		if !w.IsUserWindow() {
			continue
		}
		// Untitled windows cannot be addressed by title later.
		if w.Title == "" {
			m.log.Debug("skipping untitled window", zap.String("window", w.ID))
			continue
		}
		rec, ok := m.captureWindow(ctx, w)
		if !ok {
			continue
		}
		snap.Add(rec)
	}

	m.log.Info("session captured", zap.Int("windows", snap.Len()))
	if m.opts.DryRun {
		m.println("Dry run save.")
		return snap, nil
	}
	if err := model.SaveSnapshot(m.opts.SessionFile, snap); err != nil {
		return nil, err
	}
	m.println("Session saved.")
	return snap, nil
}

func (m *Manager) captureWindow(ctx context.Context, w model.Window) (model.WindowRecord, bool) {
	log := m.log.With(zap.String("window", w.ID), zap.Int("pid", w.PID))

	cmdline, err := m.provider.Processes.CommandLine(w.PID)
	if err != nil {
		log.Warn("skipping window, process command line unreadable", zap.Error(err))
		return model.WindowRecord{}, false
	}
	launch := m.cfg.ResolveAlias(cmdline, m.provider.Processes.Which)
	if m.cfg.IsBlacklisted(cmdline) || m.cfg.IsBlacklisted(launch) {
		log.Debug("skipping blacklisted window", zap.String("command", cmdline))
		return model.WindowRecord{}, false
	}

	states, err := m.provider.Reader.WindowStates(ctx, w.ID)
	if err != nil {
		// The window closed between listing and inspection.
		log.Warn("skipping window, state unreadable", zap.Error(err))
		return model.WindowRecord{}, false
	}

	return model.WindowRecord{
		Desktop:       w.Desktop,
		PID:           w.PID,
		Geometry:      w.Bounds,
		StateCommand:  model.StateCommand(states),
		LaunchCommand: launch,
		TitleToken:    model.EncodeTitle(w.Title),
	}, true
}
