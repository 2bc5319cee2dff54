package domain

import "github.com/bossbaby/BBS-BookingService/pkg/types"

// SlotStatus classifies a generated slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotClosed    SlotStatus = "closed"
)

// Slot is one candidate appointment interval within a session window.
// Slots are a derived view: generated per request, never persisted.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus
	Reason          string // human-readable, empty for available slots
}

// IsAvailable reports whether the slot can still be booked.
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// GenerateSlots derives the authoritative ordered slot list for one day.
//
// Each session window is walked forward in SlotDurationMinutes steps; a
// trailing slot whose end would exceed the window end is dropped, not
// truncated. A slot is Booked when it overlaps any booking, else Closed when
// it overlaps any closure, else Available. The booking check runs first, so
// Booked wins when both would apply.
//
// Pure function of its inputs: window order, then chronological order within
// each window, identical output for identical input.
func GenerateSlots(schedule Schedule, bookings []*Booking, closures []*StudioClosure) ([]Slot, error) {
	slots := make([]Slot, 0)

	bookingIntervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		iv, err := b.Interval(schedule.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		bookingIntervals = append(bookingIntervals, iv)
	}

	closureIntervals := make([]Interval, 0, len(closures))
	for _, c := range closures {
		iv, err := c.Interval()
		if err != nil {
			return nil, err
		}
		closureIntervals = append(closureIntervals, iv)
	}

	for _, window := range schedule.Sessions {
		current := window.Start
		for current.IsBefore(window.End) {
			slotEnd, err := current.AddMinutes(schedule.SlotDurationMinutes)
			if err != nil {
				return nil, err
			}
			if slotEnd.IsAfter(window.End) {
				break
			}

			slotInterval := Interval{Start: current, End: slotEnd}

			slot := Slot{
				StartTime:       current,
				DurationMinutes: schedule.SlotDurationMinutes,
				Status:          SlotAvailable,
			}

			switch {
			case overlapsAny(slotInterval, bookingIntervals):
				slot.Status = SlotBooked
				slot.Reason = "Booked"
			case overlapsAny(slotInterval, closureIntervals):
				slot.Status = SlotClosed
				slot.Reason = "Closed"
			}

			slots = append(slots, slot)
			current = slotEnd
		}
	}

	return slots, nil
}

func overlapsAny(iv Interval, others []Interval) bool {
	for _, other := range others {
		if iv.Overlaps(other) {
			return true
		}
	}
	return false
}
