package session

import "github.com/google/uuid"

// Scope is the handle to one quiz attempt. The store behind it is only
// reachable while the scope is live.
type Scope struct {
	id    string
	store *Store
}

// Begin opens a new scope with an empty store.
func Begin() *Scope {
	return &Scope{
		id:    uuid.New().String(),
		store: NewStore(),
	}
}

// ID returns the scope's unique id, or "" for a nil scope.
func (s *Scope) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Store returns the scope's store. It fails with ErrUninitialized when the
// scope is nil or has been ended.
func (s *Scope) Store() (*Store, error) {
	if s == nil || s.store == nil {
		return nil, ErrUninitialized
	}
	return s.store, nil
}

// Live reports whether Store would succeed.
func (s *Scope) Live() bool {
	return s != nil && s.store != nil
}

// End tears the scope down. Later calls to Store fail.
func (s *Scope) End() {
	if s == nil || s.store == nil {
		return
	}
	s.store.Reset()
	s.store = nil
}
