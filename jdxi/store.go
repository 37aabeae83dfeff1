package jdxi

import "sync"

// Store holds the last-known raw value per resolved address. The decoder
// writes to it from the MIDI input callback while the UI thread reads it, so
// every access takes the mutex for the duration of one get or set. No
// history is kept; entries are overwritten in place.
type Store struct {
	mu     sync.Mutex
	values map[Address]int
}

func NewStore() *Store {
	return &Store{values: make(map[Address]int)}
}

// Set records the latest value seen at addr.
func (s *Store) Set(addr Address, value int) {
	s.mu.Lock()
	s.values[addr] = value
	s.mu.Unlock()
}

// Get returns the last-known value at addr, if any message has reported one.
func (s *Store) Get(addr Address) (int, bool) {
	s.mu.Lock()
	v, ok := s.values[addr]
	s.mu.Unlock()
	return v, ok
}

// Reset drops every entry, as on disconnect.
func (s *Store) Reset() {
	s.mu.Lock()
	s.values = make(map[Address]int)
	s.mu.Unlock()
}

// Len reports how many addresses have a known value.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Snapshot copies the current contents for iteration without holding the
// lock.
func (s *Store) Snapshot() map[Address]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[Address]int, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
