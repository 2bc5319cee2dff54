package domain

import (
	"fmt"

	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// Interval is a half-open [Start, End) time-of-day interval.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval builds an interval, rejecting Start >= End.
func NewInterval(start, end types.TimeString) (Interval, error) {
	if err := start.Validate(); err != nil {
		return Interval{}, fmt.Errorf("interval start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return Interval{}, fmt.Errorf("interval end: %w", err)
	}
	if !start.IsBefore(end) {
		return Interval{}, fmt.Errorf("interval start %s must be before end %s", start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
//
// This is the single overlap predicate for the whole service: slot marking,
// booking conflict detection and closure blocking all go through it. Strict
// comparisons on both sides mean that touching intervals (one ends exactly
// where the other starts) do NOT overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}
