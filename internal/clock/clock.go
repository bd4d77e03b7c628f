// Package clock supplies the aggregation instant. Production code uses
// System; tests pin time with Fixed so date windows are deterministic.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }

// Func adapts a plain function, handy for tests that advance time.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }
