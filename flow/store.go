package flow

import (
	"time"

	"github.com/zekroTJA/timedmap"
)

// Store keeps in-progress flows between wizard requests, keyed by the flow ID
// that rides along in the page's query string. Entries expire after ttl, which
// discards the draft the same way navigating away from the wizard would.
type Store struct {
	entries *timedmap.TimedMap
	ttl     time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: timedmap.New(time.Minute),
		ttl:     ttl,
	}
}

func (s *Store) Put(id string, value interface{}) {
	s.entries.Set(id, value, s.ttl)
}

// Registration looks up a registration flow. The TTL is refreshed on every
// hit so an active wizard never expires under the user.
func (s *Store) Registration(id string) (*Registration, bool) {
	if id == "" {
		return nil, false
	}
	reg, ok := s.entries.GetValue(id).(*Registration)
	if ok {
		_ = s.entries.Refresh(id, s.ttl)
	}
	return reg, ok
}

func (s *Store) Recovery(id string) (*Recovery, bool) {
	if id == "" {
		return nil, false
	}
	rec, ok := s.entries.GetValue(id).(*Recovery)
	if ok {
		_ = s.entries.Refresh(id, s.ttl)
	}
	return rec, ok
}

func (s *Store) Remove(id string) {
	s.entries.Remove(id)
}
