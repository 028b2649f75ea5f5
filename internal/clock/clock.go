package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the local server time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

func NewFixed(at time.Time) Fixed {
	return Fixed{At: at}
}
