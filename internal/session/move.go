package session

import (
	"context"
	"fmt"

	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform"
	"go.uber.org/zap"
)

// Reposition moves already-open windows back to their saved geometry,
// desktop and state. Windows are matched to records by title token; records
// without an open window are skipped and nothing is launched.
func (m *Manager) Reposition(ctx context.Context) (Report, error) {
	var report Report

	windows, err := m.provider.Reader.ListWindows(ctx, platform.ListOptions{All: true})
	if err != nil {
		return report, fmt.Errorf("list windows: %w", err)
	}
	open := make(map[model.TitleToken]bool, len(windows))
	for _, w := range windows {
		if w.Desktop == model.PinnedDesktop || w.Title == "" {
			continue
		}
		open[model.EncodeTitle(w.Title)] = true
	}

	snap, err := m.Load()
	if err != nil {
		return report, err
	}

	m.log.Debug("session loaded", zap.Int("records", snap.Len()))
	if m.opts.DryRun {
		m.println("Dry run move.")
	}

	for _, rec := range snap.Records() {
		if !open[rec.TitleToken] {
			report.Skipped = append(report.Skipped, rec)
			continue
		}
		if err := m.reposition(ctx, rec); err != nil {
			return report, err
		}
		report.Moved = append(report.Moved, rec)
	}
	return report, nil
}

func (m *Manager) reposition(ctx context.Context, rec model.WindowRecord) error {
	title := rec.Title()
	target := platform.TitleTarget(title)
	wm := m.provider.WindowManager

	// A maximized window ignores explicit geometry.
	if !m.opts.DryRun {
		if err := wm.SetState(target, model.UnmaximizeCommand); err != nil {
			return err
		}
	}

	m.println(title)
	m.printf("Moving to 0,%s\n", rec.Coords())
	if !m.opts.DryRun {
		if err := wm.MoveResize(target, rec.Geometry); err != nil {
			return err
		}
	}
	if err := m.opts.Settler.Settle(ctx, ""); err != nil {
		return err
	}

	m.printf("Moving to workspace %d\n", rec.Desktop)
	if !m.opts.DryRun {
		if err := wm.MoveToDesktop(target, rec.Desktop); err != nil {
			return err
		}
	}

	m.printf("Modifying properties to %s\n\n", rec.StateCommand)
	if !m.opts.DryRun && rec.StateCommand != "" {
		if err := wm.SetState(target, rec.StateCommand); err != nil {
			return err
		}
	}
	return nil
}
