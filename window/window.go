// Package window decides whether teams may currently create or edit their
// submission. Gates are built once from configuration and are safe for
// concurrent use.
package window

import (
	"time"

	"hackportal-backend/entity"
)

type Gate interface {
	IsOpen() bool
}

// Flag is a gate switched by hand.
type Flag bool

func (f Flag) IsOpen() bool {
	return bool(f)
}

// Range is open from Start (inclusive) to End (exclusive). A zero bound is
// unbounded on that side.
type Range struct {
	Start time.Time
	End   time.Time
	Now   func() time.Time
}

func (r Range) IsOpen() bool {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	if !r.Start.IsZero() && now.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && !now.Before(r.End) {
		return false
	}
	return true
}

type all []Gate

func (a all) IsOpen() bool {
	for _, g := range a {
		if !g.IsOpen() {
			return false
		}
	}
	return true
}

// All is open only while every gate is open.
func All(gates ...Gate) Gate {
	return all(gates)
}

// New builds the gate for a configured window: the manual flag must be on
// and, when dates are set, the clock must be inside them.
func New(w entity.Window, now func() time.Time) Gate {
	if w.StartDate.IsZero() && w.EndDate.IsZero() {
		return Flag(w.Open)
	}

	return All(Flag(w.Open), Range{Start: w.StartDate, End: w.EndDate, Now: now})
}
