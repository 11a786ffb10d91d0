package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// WindowRecord is one saved window of a session.
type WindowRecord struct {
	Desktop       int        `yaml:"desktop"        json:"-"`
	PID           int        `yaml:"pid"            json:"-"`
	Geometry      [4]int     `yaml:"geometry"       json:"-"`
	StateCommand  string     `yaml:"state"          json:"-"`
	LaunchCommand string     `yaml:"launch"         json:"-"`
	TitleToken    TitleToken `yaml:"title_token"    json:"-"`
}

// Title returns the decoded window title.
func (r WindowRecord) Title() string {
	return r.TitleToken.Title()
}

// Coords formats the geometry as "x,y,w,h" for wmctrl -e.
func (r WindowRecord) Coords() string {
	parts := make([]string, len(r.Geometry))
	for i, v := range r.Geometry {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// MarshalJSON encodes the record as the session file tuple
// [pid, [x, y, w, h], state, launch, title]. The desktop is the key of the
// enclosing snapshot object.
func (r WindowRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		r.PID,
		r.Geometry,
		r.StateCommand,
		r.LaunchCommand,
		string(r.TitleToken),
	})
}

// UnmarshalJSON decodes a session file tuple. A state stored as a list of
// flag names is normalized into an instruction.
func (r *WindowRecord) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("window record: %w", err)
	}
	if len(tuple) != 5 {
		return fmt.Errorf("window record: expected 5 fields, got %d", len(tuple))
	}

	var rec WindowRecord
	if err := json.Unmarshal(tuple[0], &rec.PID); err != nil {
		return fmt.Errorf("window record pid: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &rec.Geometry); err != nil {
		return fmt.Errorf("window record geometry: %w", err)
	}
	if err := json.Unmarshal(tuple[2], &rec.StateCommand); err != nil {
		var flags []string
		if json.Unmarshal(tuple[2], &flags) != nil {
			return fmt.Errorf("window record state: %w", err)
		}
		rec.StateCommand = StateCommand(flags)
	}
	if err := json.Unmarshal(tuple[3], &rec.LaunchCommand); err != nil {
		return fmt.Errorf("window record launch command: %w", err)
	}
	var tok string
	if err := json.Unmarshal(tuple[4], &tok); err != nil {
		return fmt.Errorf("window record title: %w", err)
	}
	rec.TitleToken = TitleToken(tok)

	rec.Desktop = r.Desktop
	*r = rec
	return nil
}
