package redaction

import "sync"

// Store is the process-wide registry of live redaction maps, keyed by map ID.
// Maps are request-scoped: the owning request inserts at redact time and
// deletes when done. There is no implicit expiry; a caller that forgets to
// release leaks the map for the life of the process.
type Store struct {
	mu   sync.RWMutex
	maps map[string]*Map
}

func NewStore() *Store {
	return &Store{
		maps: make(map[string]*Map),
	}
}

func (s *Store) Put(m *Map) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[m.ID] = m
}

func (s *Store) Get(id string) (*Map, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.maps[id]
	return m, ok
}

// Delete removes a map and reports whether it was present. Deleting an
// unknown or already-deleted ID is a no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.maps[id]
	if ok {
		delete(s.maps, id)
	}
	return ok
}

// Len reports the number of live maps.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.maps)
}
