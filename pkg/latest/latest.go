// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package latest implements a last-write-wins slot for results of
asynchronous requests.

Each request takes a ticket with [Slot.Begin] before it starts. When it
finishes it calls [Slot.Commit] with that ticket; the value is stored only if
no newer request has begun since. Superseded results are dropped silently.
*/
package latest

import "sync"

// Ticket identifies one in-flight request.
type Ticket uint64

// Slot holds the most recent committed value of type T.
//
// The zero value is ready to use and safe for concurrent use.
type Slot[T any] struct {
	mu      sync.Mutex
	issued  Ticket
	value   T
	present bool
}

// Begin issues a new ticket, superseding every ticket issued before it.
func (s *Slot[T]) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// Commit stores value if ticket is still the newest one issued.
// It reports whether the value was accepted.
func (s *Slot[T]) Commit(ticket Ticket, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.issued {
		return false
	}

	s.value = value
	s.present = true
	return true
}

// Load returns the last accepted value and whether one exists.
func (s *Slot[T]) Load() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value, s.present
}

// Reset clears the stored value and invalidates outstanding tickets.
func (s *Slot[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.issued++
	s.value = zero
	s.present = false
}
