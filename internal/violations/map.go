package violations

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map groups violations by normalized file path. Paths keep the order in
// which they were first seen, and each path's violations keep the order in
// which they appeared in the tool output.
//
// An absent path means the tool reported nothing about it. Some formats
// record a path with an empty list to say "scanned, nothing found"; that
// distinction is preserved, not unified.
type Map struct {
	order  []string
	byPath map[string][]Violation
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{byPath: make(map[string][]Violation)}
}

// Touch ensures path has an entry, creating an empty violation list if the
// path has not been seen before.
func (m *Map) Touch(path string) {
	if _, ok := m.byPath[path]; ok {
		return
	}
	m.order = append(m.order, path)
	m.byPath[path] = []Violation{}
}

// Add appends a violation to the list for path, creating the entry first if
// needed.
func (m *Map) Add(path string, v Violation) {
	m.Touch(path)
	m.byPath[path] = append(m.byPath[path], v)
}

// Set replaces the violation list for path.
func (m *Map) Set(path string, vs []Violation) {
	m.Touch(path)
	if vs == nil {
		vs = []Violation{}
	}
	m.byPath[path] = vs
}

// Paths returns the normalized paths in first-seen order. The returned slice
// is owned by the Map and must not be mutated.
func (m *Map) Paths() []string {
	return m.order
}

// Get returns the violations recorded for path, or nil if the path has no
// entry.
func (m *Map) Get(path string) []Violation {
	return m.byPath[path]
}

// Has reports whether path has an entry, even an empty one.
func (m *Map) Has(path string) bool {
	_, ok := m.byPath[path]
	return ok
}

// Len returns the number of path entries.
func (m *Map) Len() int {
	return len(m.order)
}

// Total returns the number of violations across all paths.
func (m *Map) Total() int {
	n := 0
	for _, vs := range m.byPath {
		n += len(vs)
	}
	return n
}

// UnmarshalJSON reads a JSON object keyed by path, keeping the key order of
// the document.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("violations map: expected JSON object, got %v", tok)
	}

	m.order = nil
	m.byPath = make(map[string][]Violation)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("violations map: expected string key, got %v", keyTok)
		}
		var vs []Violation
		if err := dec.Decode(&vs); err != nil {
			return err
		}
		m.Set(key, vs)
	}
	_, err = dec.Token() // closing brace
	return err
}

// MarshalJSON renders the map as a JSON object keyed by path, preserving
// first-seen path order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		vals, err := json.Marshal(m.byPath[path])
		if err != nil {
			return nil, err
		}
		buf.Write(vals)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
