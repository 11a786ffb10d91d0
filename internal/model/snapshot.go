package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// ErrNoSnapshot is returned by LoadSnapshot when no session has been saved.
var ErrNoSnapshot = errors.New("no saved session")

// Snapshot maps a desktop index to the windows saved on it, in the order
// they were listed.
type Snapshot map[int][]WindowRecord

// Add appends a record under its desktop.
func (s Snapshot) Add(r WindowRecord) {
	s[r.Desktop] = append(s[r.Desktop], r)
}

// Desktops returns the desktop indexes in ascending order.
func (s Snapshot) Desktops() []int {
	desktops := make([]int, 0, len(s))
	for d := range s {
		desktops = append(desktops, d)
	}
	sort.Ints(desktops)
	return desktops
}

// Records returns every record, desktop by desktop, preserving the order
// within each desktop.
func (s Snapshot) Records() []WindowRecord {
	var records []WindowRecord
	for _, d := range s.Desktops() {
		records = append(records, s[d]...)
	}
	return records
}

// Len returns the number of saved windows.
func (s Snapshot) Len() int {
	n := 0
	for _, recs := range s {
		n += len(recs)
	}
	return n
}

// MarshalJSON encodes the snapshot as an object keyed by desktop index.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	m := make(map[string][]WindowRecord, len(s))
	for d, recs := range s {
		m[strconv.Itoa(d)] = recs
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by desktop index.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var m map[string][]WindowRecord
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(Snapshot, len(m))
	for key, recs := range m {
		d, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("invalid desktop %q: %w", key, err)
		}
		for i := range recs {
			recs[i].Desktop = d
		}
		out[d] = recs
	}
	*s = out
	return nil
}

// SaveSnapshot replaces the session file at path with s. The file is written
// to a temporary sibling first and renamed into place.
func SaveSnapshot(path string, s Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-session-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a previously saved session file.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, path)
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return s, nil
}
