package domain

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// Booking represents a confirmed photo session in the studio.
// A booking always occupies one fixed-length slot starting at TimeSlot.
type Booking struct {
	ID        int64
	UserID    int64
	BabyName  string
	BabyAge   int
	MobileNo  string
	PhotoType string

	Date     time.Time        // calendar day, time part is zero
	TimeSlot types.TimeString // start of the occupied slot

	// Mirroring state for the external calendar. A booking with
	// CalendarSynced=false is picked up by the sync sweep.
	CalendarSynced  bool
	CalendarEventID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the half-open time interval occupied by the booking.
func (b *Booking) Interval(durationMinutes int) (Interval, error) {
	end, err := b.TimeSlot.AddMinutes(durationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(b.TimeSlot, end)
}

// IsOwnedBy reports whether the booking belongs to the given user.
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}
