// Package sequence numbers the revisions of an ordered set. Every accepted
// insertion moves the set to a new revision; duplicates and rejected
// elements do not.
package sequence

import "sync/atomic"

// Sequencer is the revision counter of one set. The set service draws a
// revision while it still holds the write lock, so revision order is the
// order in which elements entered the tree. Published insert events carry
// the revision, letting consumers detect gaps and reorder deliveries.
type Sequencer struct {
	rev atomic.Uint64
}

// New returns a counter whose first issued revision is base+1. A fresh set
// starts at base 0.
func New(base uint64) *Sequencer {
	s := &Sequencer{}
	s.rev.Store(base)
	return s
}

// Next moves to and returns the following revision. It is safe to call
// from any goroutine.
func (s *Sequencer) Next() uint64 {
	return s.rev.Add(1)
}

// Current is the revision of the latest accepted insertion, or the base
// when nothing has been accepted.
func (s *Sequencer) Current() uint64 {
	return s.rev.Load()
}
