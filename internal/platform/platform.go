package platform

import (
	"context"

	"github.com/sessionctl/sessionctl/internal/model"
)

// Reader queries the window manager for the current desktop state.
type Reader interface {
	// ListWindows returns top-level windows in stacking order.
	ListWindows(ctx context.Context, opts ListOptions) ([]model.Window, error)

	// WindowStates returns the tracked state flags (see model.StateAtoms)
	// currently set on the window.
	WindowStates(ctx context.Context, windowID string) ([]string, error)
}

// WindowManager moves windows and toggles their state flags. Calls return
// once the command has been issued; they do not wait for the window manager
// to apply it.
type WindowManager interface {
	MoveResize(target Target, geometry [4]int) error
	MoveToDesktop(target Target, desktop int) error
	SetState(target Target, command string) error
}

// Launcher starts applications without waiting for them to exit.
type Launcher interface {
	Launch(command string) error
}

// ProcessInspector resolves process and executable information.
type ProcessInspector interface {
	// CommandLine returns the argument vector of a running process joined
	// by spaces.
	CommandLine(pid int) (string, error)

	// Which resolves an executable name against PATH. It returns "" when
	// nothing is found.
	Which(name string) string
}
