// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     notify
// Description: Ordered change notification for form observers
// Created:     2026-10-18
// License:     MIT
// ============================================================================

// Package notify fans a "data changed" signal out to interested views.
package notify

import (
	"github.com/google/uuid"
)

// Subscription identifies one registered observer
type Subscription struct {
	id uuid.UUID
}

// ID returns the subscription token
func (s Subscription) ID() uuid.UUID {
	return s.id
}

type entry struct {
	id uuid.UUID
	fn func()
}

// Notifier holds an ordered list of observers. Observers run synchronously,
// in registration order, on the goroutine calling Notify. A Notifier is not
// safe for concurrent use.
type Notifier struct {
	observers []entry
}

// New returns an empty notifier
func New() *Notifier {
	return &Notifier{}
}

// Subscribe appends fn. Registering the same function twice runs it twice.
func (n *Notifier) Subscribe(fn func()) Subscription {
	if fn == nil {
		return Subscription{}
	}
	e := entry{id: uuid.New(), fn: fn}
	n.observers = append(n.observers, e)
	return Subscription{id: e.id}
}

// Unsubscribe removes the observer and reports whether it was registered
func (n *Notifier) Unsubscribe(s Subscription) bool {
	for i, e := range n.observers {
		if e.id == s.id {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Notify invokes every observer exactly once. Observers added during
// notification run from the next Notify on.
func (n *Notifier) Notify() {
	snapshot := make([]entry, len(n.observers))
	copy(snapshot, n.observers)
	for _, e := range snapshot {
		e.fn()
	}
}

// Len returns the number of registered observers
func (n *Notifier) Len() int {
	return len(n.observers)
}
