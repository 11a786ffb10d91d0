// Package platformtest provides an in-memory platform backend for tests.
package platformtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform"
)

// Call is one mutating command issued against the fake.
type Call struct {
	Op     string // "move", "desktop", "state" or "launch"
	Target string // window selector, or the launch command
	Arg    string
}

func (c Call) String() string {
	return fmt.Sprintf("%s %s %s", c.Op, c.Target, c.Arg)
}

// Fake implements every platform interface on top of static data.
type Fake struct {
	mu sync.Mutex

	Windows  []model.Window
	States   map[string][]string // window ID -> tracked flags
	Cmdlines map[int]string      // pid -> command line
	Paths    map[string]string   // executable name -> resolved path

	ListErr   error
	LaunchErr error

	Calls     []Call
	ListCalls int
}

// NewFake returns an empty fake.
func NewFake() *Fake {
	return &Fake{
		States:   map[string][]string{},
		Cmdlines: map[int]string{},
		Paths:    map[string]string{},
	}
}

// Provider wraps the fake in a platform.Provider.
func (f *Fake) Provider() *platform.Provider {
	return &platform.Provider{
		Reader:        f,
		WindowManager: f,
		Launcher:      f,
		Processes:     f,
	}
}

// AddWindow registers an open window with its process command line and
// state flags.
func (f *Fake) AddWindow(w model.Window, cmdline string, states ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Windows = append(f.Windows, w)
	if cmdline != "" {
		f.Cmdlines[w.PID] = cmdline
	}
	if len(states) > 0 {
		f.States[w.ID] = states
	}
}

func (f *Fake) ListWindows(_ context.Context, opts platform.ListOptions) ([]model.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var out []model.Window
	for _, w := range f.Windows {
		if !opts.All && !w.IsUserWindow() {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (f *Fake) WindowStates(_ context.Context, windowID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.States[windowID], nil
}

func (f *Fake) MoveResize(target platform.Target, geometry [4]int) error {
	return f.record(Call{Op: "move", Target: target.Selector(), Arg: fmt.Sprintf("%d,%d,%d,%d", geometry[0], geometry[1], geometry[2], geometry[3])})
}

func (f *Fake) MoveToDesktop(target platform.Target, desktop int) error {
	return f.record(Call{Op: "desktop", Target: target.Selector(), Arg: fmt.Sprint(desktop)})
}

func (f *Fake) SetState(target platform.Target, command string) error {
	return f.record(Call{Op: "state", Target: target.Selector(), Arg: command})
}

func (f *Fake) Launch(command string) error {
	if f.LaunchErr != nil {
		return f.LaunchErr
	}
	return f.record(Call{Op: "launch", Target: command})
}

func (f *Fake) CommandLine(pid int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd, ok := f.Cmdlines[pid]
	if !ok {
		return "", fmt.Errorf("no such process: %d", pid)
	}
	return cmd, nil
}

func (f *Fake) Which(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Paths[name]
}

func (f *Fake) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, c)
	return nil
}

// CallsOf returns the recorded calls with the given op.
func (f *Fake) CallsOf(op string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Transcript renders every recorded call, one per line.
func (f *Fake) Transcript() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var b strings.Builder
	for _, c := range f.Calls {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
