package store

import (
	"sync"

	"renderkit/internal/ports/output"
)

var _ output.ValueStore = (*MemoryStore)(nil)

type valueKey struct {
	id, differentiator string
}

// MemoryStore is an in-memory template value store. Values are keyed by id
// and differentiator, attributes by id only. It is safe for concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	values     map[valueKey]string
	attributes map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:     make(map[valueKey]string),
		attributes: make(map[string]string),
	}
}

// SetValue stores v under id and differentiator.
func (s *MemoryStore) SetValue(id, differentiator, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[valueKey{id, differentiator}] = v
}

// SetAttribute stores v as the attribute id.
func (s *MemoryStore) SetAttribute(id, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attributes[id] = v
}

// Load stores every entry of values with an empty differentiator.
func (s *MemoryStore) Load(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, v := range values {
		s.values[valueKey{id: id}] = v
	}
}

func (s *MemoryStore) Value(id, differentiator string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[valueKey{id, differentiator}]
	return v, ok
}

func (s *MemoryStore) Attribute(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.attributes[id]
	return v, ok
}

// Delete removes the value id/differentiator and reports whether it existed.
func (s *MemoryStore) Delete(id, differentiator string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := valueKey{id, differentiator}
	_, ok := s.values[k]
	delete(s.values, k)
	return ok
}
