// Package filemap loads and validates the declarative file map: the document
// that names which logical datasets to ingest and from which source files.
package filemap

import (
	"sort"
	"strings"
)

// Entry describes one logical dataset in the file map.
type Entry struct {
	// Fname is the source filename. An entry without one is skipped entirely.
	Fname string

	// Optional marks the entry as tolerable when no file matches.
	Optional bool

	// Fpath pins the resolution to a concrete path. A pinned path always
	// wins over fresh resolution.
	Fpath string

	// Options carries the remaining entry keys, forwarded to the decoder.
	Options map[string]any
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	out := &Entry{Fname: e.Fname, Optional: e.Optional, Fpath: e.Fpath}
	if e.Options != nil {
		out.Options = make(map[string]any, len(e.Options))
		for k, v := range e.Options {
			out.Options[k] = v
		}
	}
	return out
}

// Map is a file map keyed by lowercased logical dataset name.
type Map map[string]*Entry

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for name, entry := range m {
		out[name] = entry.Clone()
	}
	return out
}

// Names returns the logical dataset names in sorted order. The driver
// iterates in this order so logging is reproducible run to run.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyResolved pins resolved paths back onto the map. This is the explicit
// merge-back step for the resolution cache the driver returns: applying it
// makes a re-ingestion reuse the first run's paths.
func (m Map) ApplyResolved(resolved map[string]string) {
	for name, path := range resolved {
		if entry, ok := m[strings.ToLower(name)]; ok && path != "" {
			entry.Fpath = path
		}
	}
}
