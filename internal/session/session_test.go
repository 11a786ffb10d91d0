package session

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sessionctl/sessionctl/internal/config"
	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform/platformtest"
	"github.com/stretchr/testify/require"
)

// harness wires a Manager to an in-memory platform with no settle delay.
type harness struct {
	fake *platformtest.Fake
	out  *bytes.Buffer
	path string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		fake: platformtest.NewFake(),
		out:  &bytes.Buffer{},
		path: filepath.Join(t.TempDir(), "sessionctrl.info"),
	}
}

func (h *harness) manager(cfg config.Config, dryRun bool) *Manager {
	return New(h.fake.Provider(), cfg, Options{
		SessionFile: h.path,
		DryRun:      dryRun,
		Settler:     FixedDelay{},
		Out:         h.out,
	})
}

func (h *harness) save(t *testing.T, records ...model.WindowRecord) {
	t.Helper()
	snap := model.Snapshot{}
	for _, r := range records {
		snap.Add(r)
	}
	require.NoError(t, model.SaveSnapshot(h.path, snap))
}

func record(desktop int, launch, title string, geometry [4]int, state string) model.WindowRecord {
	return model.WindowRecord{
		Desktop:       desktop,
		PID:           1000 + desktop,
		Geometry:      geometry,
		StateCommand:  state,
		LaunchCommand: launch,
		TitleToken:    model.EncodeTitle(title),
	}
}
