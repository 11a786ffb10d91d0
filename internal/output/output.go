// Package output renders command results as YAML or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sessionctl/sessionctl/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// WindowEntry is one open window in `list` output.
type WindowEntry struct {
	ID      string `yaml:"id"                json:"id"`
	Desktop int    `yaml:"desktop"           json:"desktop"`
	PID     int    `yaml:"pid"               json:"pid"`
	Bounds  [4]int `yaml:"bounds"            json:"bounds"`
	Title   string `yaml:"title"             json:"title"`
	Command string `yaml:"command,omitempty" json:"command,omitempty"`
}

// WindowEntries converts listed windows. command resolves the owning
// process's command line; windows whose process cannot be read get none.
func WindowEntries(windows []model.Window, command func(pid int) (string, error)) []WindowEntry {
	entries := []WindowEntry{}
	for _, w := range windows {
		e := WindowEntry{ID: w.ID, Desktop: w.Desktop, PID: w.PID, Bounds: w.Bounds, Title: w.Title}
		if command != nil && w.PID > 0 {
			if cmd, err := command(w.PID); err == nil {
				e.Command = cmd
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// SessionEntry is one saved window in `show` output, with its title decoded.
type SessionEntry struct {
	Desktop  int    `yaml:"desktop"  json:"desktop"`
	PID      int    `yaml:"pid"      json:"pid"`
	Geometry [4]int `yaml:"geometry" json:"geometry"`
	State    string `yaml:"state"    json:"state"`
	Launch   string `yaml:"launch"   json:"launch"`
	Title    string `yaml:"title"    json:"title"`
}

// SessionEntries flattens a snapshot in restore order.
func SessionEntries(s model.Snapshot) []SessionEntry {
	entries := []SessionEntry{}
	for _, r := range s.Records() {
		entries = append(entries, SessionEntryFrom(r))
	}
	return entries
}

// SessionEntryFrom converts a saved record.
func SessionEntryFrom(r model.WindowRecord) SessionEntry {
	return SessionEntry{
		Desktop:  r.Desktop,
		PID:      r.PID,
		Geometry: r.Geometry,
		State:    r.StateCommand,
		Launch:   r.LaunchCommand,
		Title:    r.Title(),
	}
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return FprintJSON(w, v, PrettyOutput)
	case FormatYAML:
		return FprintYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// FprintJSON serializes v to w as JSON, indented when pretty is set.
func FprintJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// FprintYAML serializes v to w as YAML.
func FprintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
