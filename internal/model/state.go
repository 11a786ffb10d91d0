package model

import "strings"

// Window-manager state flags tracked across sessions, named the way wmctrl's
// -b option expects them.
const (
	StateMaximizedVert = "maximized_vert"
	StateMaximizedHorz = "maximized_horz"
	StateHidden        = "hidden"
)

// StateAtoms maps the _NET_WM_STATE atoms we care about to wmctrl flag names.
// Every other atom (sticky, shaded, fullscreen, above, ...) is ignored.
var StateAtoms = map[string]string{
	"_NET_WM_STATE_MAXIMIZED_VERT": StateMaximizedVert,
	"_NET_WM_STATE_MAXIMIZED_HORZ": StateMaximizedHorz,
	"_NET_WM_STATE_HIDDEN":         StateHidden,
}

// UnmaximizeCommand clears both maximize flags. A window must not be
// maximized for an explicit geometry to take effect.
const UnmaximizeCommand = "remove," + StateMaximizedVert + "," + StateMaximizedHorz

// FilterStateAtoms converts raw atoms to tracked flag names, keeping the order
// in which the atoms were reported and dropping duplicates.
func FilterStateAtoms(atoms []string) []string {
	var states []string
	seen := make(map[string]bool, len(atoms))
	for _, a := range atoms {
		name, ok := StateAtoms[strings.TrimSpace(a)]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		states = append(states, name)
	}
	return states
}

// StateCommand turns the tracked flags observed on a window into the
// instruction replayed through wmctrl -b when the window is restored.
//
// No flags means the window was not maximized, so both maximize flags are
// removed explicitly. A single maximize flag clears the opposite axis.
func StateCommand(states []string) string {
	switch len(states) {
	case 0:
		return UnmaximizeCommand
	case 1:
		switch states[0] {
		case StateMaximizedHorz:
			return "remove," + StateMaximizedVert
		case StateMaximizedVert:
			return "remove," + StateMaximizedHorz
		}
	}
	return "add," + strings.Join(states, ",")
}
