package x11

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/prometheus/procfs"
	"go.uber.org/zap"

	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/platform"
)

// Backend implements the platform interfaces for X11 desktops.
type Backend struct {
	run      runner
	proc     procfs.FS
	lookPath func(string) (string, error)
	log      *zap.Logger
}

// New creates a backend reading process information from the default /proc
// mount.
func New(log *zap.Logger) (*Backend, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, fmt.Errorf("open procfs: %w", err)
	}
	return newBackend(execRunner{log: log}, fs, log), nil
}

func newBackend(run runner, fs procfs.FS, log *zap.Logger) *Backend {
	return &Backend{
		run:      run,
		proc:     fs,
		lookPath: exec.LookPath,
		log:      log,
	}
}

func (b *Backend) ListWindows(ctx context.Context, opts platform.ListOptions) ([]model.Window, error) {
	out, err := b.run.Output(ctx, "wmctrl", "-lpG")
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	windows := ParseWindowList(out)
	if opts.All {
		return windows, nil
	}
	filtered := windows[:0]
	for _, w := range windows {
		if w.IsUserWindow() {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

func (b *Backend) WindowStates(ctx context.Context, windowID string) ([]string, error) {
	out, err := b.run.Output(ctx, "xprop", "-id", windowID)
	if err != nil {
		return nil, fmt.Errorf("read state of window %s: %w", windowID, err)
	}
	return model.FilterStateAtoms(ParseStateAtoms(out)), nil
}

func (b *Backend) MoveResize(target platform.Target, geometry [4]int) error {
	coords := make([]string, 0, 5)
	coords = append(coords, "0")
	for _, v := range geometry {
		coords = append(coords, strconv.Itoa(v))
	}
	return b.wmctrl(target, "-e", strings.Join(coords, ","))
}

func (b *Backend) MoveToDesktop(target platform.Target, desktop int) error {
	return b.wmctrl(target, "-t", strconv.Itoa(desktop))
}

func (b *Backend) SetState(target platform.Target, command string) error {
	return b.wmctrl(target, "-b", command)
}

func (b *Backend) wmctrl(target platform.Target, flag, value string) error {
	if err := b.run.Start("wmctrl", "-r", target.Selector(), flag, value); err != nil {
		return fmt.Errorf("wmctrl %s on %s: %w", flag, target, err)
	}
	return nil
}

// Launch splits the command with shell word rules and starts it.
func (b *Backend) Launch(command string) error {
	argv, err := shlex.Split(command)
	if err != nil {
		return fmt.Errorf("parse launch command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("empty launch command")
	}
	return b.run.Start(argv[0], argv[1:]...)
}

// CommandLine reads /proc/<pid>/cmdline with the NUL separators replaced by
// spaces.
func (b *Backend) CommandLine(pid int) (string, error) {
	p, err := b.proc.Proc(pid)
	if err != nil {
		return "", fmt.Errorf("process %d: %w", pid, err)
	}
	args, err := p.CmdLine()
	if err != nil {
		return "", fmt.Errorf("cmdline of %d: %w", pid, err)
	}
	return strings.TrimSpace(strings.Join(args, " ")), nil
}

func (b *Backend) Which(name string) string {
	path, err := b.lookPath(name)
	if err != nil {
		b.log.Debug("executable not found", zap.String("name", name), zap.Error(err))
		return ""
	}
	return path
}
