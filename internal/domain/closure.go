package domain

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// StudioClosure is an admin-declared blackout interval on a given day.
// No bookings are accepted during a closure. Closures may overlap each other;
// only the union of their coverage matters.
type StudioClosure struct {
	ID        int64
	Date      time.Time // calendar day, time part is zero
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string

	CreatedAt time.Time
}

// Interval returns the half-open blackout interval.
func (c *StudioClosure) Interval() (Interval, error) {
	return NewInterval(c.StartTime, c.EndTime)
}
