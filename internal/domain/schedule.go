package domain

import (
	"fmt"
	"time"

	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// SessionWindow is a configured open interval of the day during which slots
// are offered, e.g. the morning session 10:30-13:00.
type SessionWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Schedule is the studio's daily slot schedule: ordered session windows, the
// fixed slot length and the studio timezone. It is configuration data loaded
// at startup, never derived per request.
type Schedule struct {
	Sessions            []SessionWindow
	SlotDurationMinutes int
	Location            *time.Location
}

// Validate checks internal consistency of the schedule.
func (s Schedule) Validate() error {
	if s.SlotDurationMinutes < MinSlotDurationMinutes || s.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("slot duration %d minutes out of range [%d, %d]",
			s.SlotDurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if len(s.Sessions) == 0 {
		return fmt.Errorf("schedule has no session windows")
	}
	if s.Location == nil {
		return fmt.Errorf("schedule has no timezone")
	}

	var prevEnd types.TimeString
	for i, w := range s.Sessions {
		if _, err := NewInterval(w.Start, w.End); err != nil {
			return fmt.Errorf("session window %d: %w", i, err)
		}
		if i > 0 && w.Start.IsBefore(prevEnd) {
			return fmt.Errorf("session window %d starts at %s before previous window ends at %s",
				i, w.Start, prevEnd)
		}
		prevEnd = w.End
	}
	return nil
}

// DefaultSchedule returns the studio's standard two-session day.
func DefaultSchedule(loc *time.Location) Schedule {
	return Schedule{
		Sessions: []SessionWindow{
			{Start: "10:30", End: "13:00"},
			{Start: "14:30", End: "20:00"},
		},
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		Location:            loc,
	}
}
