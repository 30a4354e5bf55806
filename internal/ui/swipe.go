package ui

import (
	"math"
	"time"
)

// Verdict is the outcome of one completed gesture.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictAdopt
	VerdictPass
)

func (v Verdict) String() string {
	switch v {
	case VerdictAdopt:
		return "adopt"
	case VerdictPass:
		return "pass"
	default:
		return "none"
	}
}

const (
	defaultSwipeThreshold = 12
	defaultSwipeVelocity  = 60.0
	nudgeStep             = 4
)

// SwipeTracker turns a horizontal drag into a verdict. A drag commits when
// the card travels at least Threshold cells, or when it is flung faster than
// Velocity cells per second in the direction it moved. Anything less snaps
// back.
type SwipeTracker struct {
	Threshold int
	Velocity  float64

	active   bool
	originX  int
	offset   int
	lastX    int
	lastAt   time.Time
	velocity float64
}

// NewSwipeTracker returns a tracker with the given thresholds, falling back
// to defaults for non-positive values.
func NewSwipeTracker(threshold int, velocity float64) SwipeTracker {
	if threshold <= 0 {
		threshold = defaultSwipeThreshold
	}
	if velocity <= 0 {
		velocity = defaultSwipeVelocity
	}
	return SwipeTracker{Threshold: threshold, Velocity: velocity}
}

// Active reports whether a drag is in progress.
func (s SwipeTracker) Active() bool { return s.active }

// Offset is the current horizontal displacement in cells.
func (s SwipeTracker) Offset() int { return s.offset }

// Press starts a pointer drag at column x.
func (s *SwipeTracker) Press(x int, at time.Time) {
	s.active = true
	s.originX = x
	s.offset = 0
	s.lastX = x
	s.lastAt = at
	s.velocity = 0
}

// Move records pointer motion. Motion without a press is ignored.
func (s *SwipeTracker) Move(x int, at time.Time) {
	if !s.active {
		return
	}
	if dt := at.Sub(s.lastAt).Seconds(); dt > 0 {
		s.velocity = float64(x-s.lastX) / dt
	}
	s.offset = x - s.originX
	s.lastX = x
	s.lastAt = at
}

// Release ends a pointer drag at column x and returns its verdict.
func (s *SwipeTracker) Release(x int, at time.Time) Verdict {
	if !s.active {
		return VerdictNone
	}
	if x != s.lastX {
		s.Move(x, at)
	}
	verdict := s.judge(true)
	s.Cancel()
	return verdict
}

// Nudge drags the card by delta cells from the keyboard.
func (s *SwipeTracker) Nudge(delta int) {
	if !s.active {
		s.active = true
		s.originX = 0
		s.offset = 0
		s.velocity = 0
	}
	s.offset += delta
	s.lastX = s.originX + s.offset
}

// Settle ends a keyboard drag. Only displacement counts; key repeat is not a
// fling.
func (s *SwipeTracker) Settle() Verdict {
	if !s.active {
		return VerdictNone
	}
	verdict := s.judge(false)
	s.Cancel()
	return verdict
}

// Cancel snaps the card back without a verdict.
func (s *SwipeTracker) Cancel() {
	*s = SwipeTracker{Threshold: s.Threshold, Velocity: s.Velocity}
}

func (s SwipeTracker) judge(useVelocity bool) Verdict {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = defaultSwipeThreshold
	}
	switch {
	case s.offset >= threshold:
		return VerdictAdopt
	case s.offset <= -threshold:
		return VerdictPass
	}
	if !useVelocity || s.offset == 0 {
		return VerdictNone
	}
	limit := s.Velocity
	if limit <= 0 {
		limit = defaultSwipeVelocity
	}
	if math.Abs(s.velocity) < limit {
		return VerdictNone
	}
	// A fling back toward the origin is a snap back, not a verdict.
	if (s.velocity > 0) != (s.offset > 0) {
		return VerdictNone
	}
	if s.offset > 0 {
		return VerdictAdopt
	}
	return VerdictPass
}
