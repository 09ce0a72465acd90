// Package schedule keeps named one-shot deadlines on virtual time.
//
// A Set never fires anything by itself. Its owner drains due deadlines with
// PopDue from its own update loop, so a disarmed timer can never be observed
// again and every callback runs in the owner's execution context.
package schedule

import "time"

// Key names a deadline. At most one deadline per key is pending at a time.
type Key string

// Timer is a pending deadline.
type Timer struct {
	Key Key
	At  time.Time
	seq uint64
}

type Set struct {
	timers map[Key]Timer
	seq    uint64
}

func New() *Set {
	return &Set{timers: make(map[Key]Timer)}
}

// Arm schedules key to fire at at. A pending deadline for the same key is
// superseded.
func (s *Set) Arm(key Key, at time.Time) Timer {
	s.seq++
	t := Timer{Key: key, At: at, seq: s.seq}
	s.timers[key] = t
	return t
}

// Disarm cancels the deadline for key and reports whether one was pending.
func (s *Set) Disarm(key Key) bool {
	if _, ok := s.timers[key]; !ok {
		return false
	}
	delete(s.timers, key)
	return true
}

func (s *Set) Armed(key Key) (Timer, bool) {
	t, ok := s.timers[key]
	return t, ok
}

func (s *Set) Len() int {
	return len(s.timers)
}

func (s *Set) Clear() {
	clear(s.timers)
}

// Next returns the earliest pending deadline. Equal deadlines are ordered by
// the order they were armed in.
func (s *Set) Next() (Timer, bool) {
	var (
		next  Timer
		found bool
	)
	for _, t := range s.timers {
		if !found || before(t, next) {
			next = t
			found = true
		}
	}
	return next, found
}

// PopDue removes and returns the earliest deadline at or before now.
func (s *Set) PopDue(now time.Time) (Timer, bool) {
	t, ok := s.Next()
	if !ok || t.At.After(now) {
		return Timer{}, false
	}
	delete(s.timers, t.Key)
	return t, true
}

func before(a, b Timer) bool {
	if a.At.Equal(b.At) {
		return a.seq < b.seq
	}
	return a.At.Before(b.At)
}
