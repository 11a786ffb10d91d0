package x11

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sessionctl/sessionctl/internal/model"
)

// wmctrl -lpG prints one window per line:
//
//	<id> <desktop> <pid> <x> <y> <w> <h> <host> <title>
//
// The title may be empty.
var windowLineRe = regexp.MustCompile(
	`^([x0-9a-f]+)\s+(-?[0-9]+)\s+([0-9]+)\s+(-?[0-9]+)\s+(-?[0-9]+)\s+([0-9]+)\s+([0-9]+)\s+\S+(?:\s+(.*))?$`)

// stateLinePrefix starts the xprop line listing a window's state atoms.
const stateLinePrefix = "_NET_WM_STATE(ATOM) ="

// ParseWindowList parses the output of wmctrl -lpG. Lines that do not match
// the expected layout are skipped; untitled windows are kept with an empty
// title.
func ParseWindowList(out []byte) []model.Window {
	text := strings.ReplaceAll(string(out), "\x00", "")
	var windows []model.Window
	for _, line := range strings.Split(text, "\n") {
		w, ok := parseWindowLine(line)
		if !ok {
			continue
		}
		windows = append(windows, w)
	}
	return windows
}

func parseWindowLine(line string) (model.Window, bool) {
	m := windowLineRe.FindStringSubmatch(line)
	if m == nil {
		return model.Window{}, false
	}
	var nums [6]int
	for i := range nums {
		v, err := strconv.Atoi(m[i+2])
		if err != nil {
			return model.Window{}, false
		}
		nums[i] = v
	}
	return model.Window{
		ID:      m[1],
		Desktop: nums[0],
		PID:     nums[1],
		Bounds:  [4]int{nums[2], nums[3], nums[4], nums[5]},
		Title:   m[8],
	}, true
}

// ParseStateAtoms extracts the atoms of the _NET_WM_STATE property from the
// output of xprop -id. It returns nil when the property is absent or empty.
func ParseStateAtoms(out []byte) []string {
	text := strings.ReplaceAll(string(out), "\x00", "")
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, stateLinePrefix) {
			continue
		}
		var atoms []string
		for _, a := range strings.Split(strings.TrimPrefix(line, stateLinePrefix), ",") {
			if a = strings.TrimSpace(a); a != "" {
				atoms = append(atoms, a)
			}
		}
		return atoms
	}
	return nil
}
