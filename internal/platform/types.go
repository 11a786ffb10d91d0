package platform

// ActiveWindowSelector addresses whichever window currently has focus.
const ActiveWindowSelector = ":ACTIVE:"

// ListOptions controls window listing.
type ListOptions struct {
	// All includes windows without an owning process and windows pinned to
	// every desktop. By default only user windows are returned.
	All bool
}

// Target selects the window an action applies to.
type Target struct {
	Title  string // Window whose title matches
	Active bool   // The focused window; Title is ignored
}

// TitleTarget targets the window with the given title.
func TitleTarget(title string) Target {
	return Target{Title: title}
}

// ActiveTarget targets the focused window.
func ActiveTarget() Target {
	return Target{Active: true}
}

// Selector returns the window selector understood by the window manager.
func (t Target) Selector() string {
	if t.Active {
		return ActiveWindowSelector
	}
	return t.Title
}

// String describes the target for log output.
func (t Target) String() string {
	if t.Active {
		return "active window"
	}
	return "window " + t.Title
}
