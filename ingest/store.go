package ingest

import (
	"sort"
	"strings"
	"sync"

	"github.com/mcllerena/R2X/errors"
)

// Store is the parsed-data store: one decoded value per logical dataset
// name. Writes are keyed uniquely per name, so concurrent ingestion workers
// never race on the same key; re-ingesting a name overwrites the prior
// entry.
type Store struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewStore creates an empty parsed-data store.
func NewStore() *Store {
	return &Store{data: make(map[string]any)}
}

// Set stores decoded data under the logical dataset name.
func (s *Store) Set(name string, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[strings.ToLower(name)] = data
}

// Get returns the decoded data for a logical dataset name. A lookup by an
// unknown key is an error, never a silent default.
func (s *Store) Get(name string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownDataset, "key %q not found in parsed data", name)
	}
	return data, nil
}

// Has reports whether the dataset was ingested.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[strings.ToLower(name)]
	return ok
}

// Names returns the ingested dataset names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of ingested datasets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
