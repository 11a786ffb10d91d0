// Package session captures the open windows of an X11 desktop into a
// snapshot and replays a snapshot onto the desktop, either relaunching
// applications that are not running or moving windows that already are.
package session

import (
	"fmt"
	"io"
	"os"

	"github.com/sessionctl/sessionctl/internal/config"
	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform"
	"go.uber.org/zap"
)

// Options configures a Manager.
type Options struct {
	// SessionFile is where snapshots are written and read.
	SessionFile string

	// DryRun prints intended actions without launching applications or
	// issuing window-manager commands. Saving skips the final write.
	DryRun bool

	// Settler waits for the window manager between dependent actions.
	// Defaults to FixedDelay{DefaultSettleDelay}.
	Settler Settler

	// Out receives the human-readable progress lines. Defaults to stdout.
	Out io.Writer

	Logger *zap.Logger
}

// Report lists the records a pipeline acted on.
type Report struct {
	Launched []model.WindowRecord `yaml:"launched,omitempty" json:"launched,omitempty"`
	Moved    []model.WindowRecord `yaml:"moved,omitempty"    json:"moved,omitempty"`
	Skipped  []model.WindowRecord `yaml:"skipped,omitempty"  json:"skipped,omitempty"`
}

// Manager runs the capture, restore and reposition pipelines. It is not safe
// for concurrent use; callers serialize pipeline runs.
type Manager struct {
	provider *platform.Provider
	cfg      config.Config
	opts     Options
	log      *zap.Logger
}

// New returns a Manager driving the given platform with an immutable
// configuration.
func New(provider *platform.Provider, cfg config.Config, opts Options) *Manager {
	if opts.Settler == nil {
		opts.Settler = FixedDelay{D: DefaultSettleDelay}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Manager{
		provider: provider,
		cfg:      cfg,
		opts:     opts,
		log:      opts.Logger,
	}
}

// Load reads the saved snapshot.
func (m *Manager) Load() (model.Snapshot, error) {
	return model.LoadSnapshot(m.opts.SessionFile)
}

func (m *Manager) printf(format string, args ...any) {
	fmt.Fprintf(m.opts.Out, format, args...)
}

func (m *Manager) println(args ...any) {
	fmt.Fprintln(m.opts.Out, args...)
}
