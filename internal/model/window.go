package model

// PinnedDesktop is the desktop index the window manager reports for windows
// shown on every desktop (docks, panels, the desktop itself).
const PinnedDesktop = -1

// Window represents a top-level window as listed by the window manager.
type Window struct {
	ID      string `yaml:"id"      json:"id"`
	Desktop int    `yaml:"desktop" json:"desktop"`
	PID     int    `yaml:"pid"     json:"pid"`
	Bounds  [4]int `yaml:"bounds"  json:"bounds"`
	Title   string `yaml:"title"   json:"title"`
}

// IsUserWindow reports whether the window belongs to an application rather
// than to the desktop shell. Windows without an owning process or pinned to
// every desktop are never part of a session.
func (w Window) IsUserWindow() bool {
	return w.PID != 0 && w.Desktop != PinnedDesktop
}
