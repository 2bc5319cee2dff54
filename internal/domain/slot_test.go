package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

func testSchedule(t *testing.T) Schedule {
	t.Helper()
	schedule := DefaultSchedule(time.UTC)
	require.NoError(t, schedule.Validate())
	return schedule
}

func slotStarts(slots []Slot) []types.TimeString {
	starts := make([]types.TimeString, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime
	}
	return starts
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	slots, err := GenerateSlots(testSchedule(t), nil, nil)
	require.NoError(t, err)

	// 5 утренних слотов (10:30-13:00) + 11 дневных (14:30-20:00)
	require.Len(t, slots, 16)

	assert.Equal(t, []types.TimeString{
		"10:30", "11:00", "11:30", "12:00", "12:30",
		"14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
		"17:30", "18:00", "18:30", "19:00", "19:30",
	}, slotStarts(slots))

	for _, s := range slots {
		assert.Equal(t, SlotAvailable, s.Status)
		assert.Equal(t, 30, s.DurationMinutes)
		assert.Empty(t, s.Reason)
	}
}

func TestGenerateSlots_DropsTrailingPartialSlot(t *testing.T) {
	schedule := Schedule{
		Sessions:            []SessionWindow{{Start: "10:00", End: "11:15"}},
		SlotDurationMinutes: 30,
		Location:            time.UTC,
	}

	slots, err := GenerateSlots(schedule, nil, nil)
	require.NoError(t, err)

	// 10:00 и 10:30 помещаются, 11:00-11:30 вышел бы за окно
	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, slotStarts(slots))
}

func TestGenerateSlots_MarksBookedSlots(t *testing.T) {
	bookings := []*Booking{{TimeSlot: "11:00"}}

	slots, err := GenerateSlots(testSchedule(t), bookings, nil)
	require.NoError(t, err)

	byStart := make(map[types.TimeString]Slot)
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.Equal(t, SlotBooked, byStart["11:00"].Status)
	assert.Equal(t, "Booked", byStart["11:00"].Reason)

	// Соседние слоты не задеты: интервалы полуоткрытые
	assert.Equal(t, SlotAvailable, byStart["10:30"].Status)
	assert.Equal(t, SlotAvailable, byStart["11:30"].Status)
}

func TestGenerateSlots_MarksClosedSlots(t *testing.T) {
	closures := []*StudioClosure{{StartTime: "12:00", EndTime: "13:00"}}

	slots, err := GenerateSlots(testSchedule(t), nil, closures)
	require.NoError(t, err)

	byStart := make(map[types.TimeString]Slot)
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.Equal(t, SlotClosed, byStart["12:00"].Status)
	assert.Equal(t, "Closed", byStart["12:00"].Reason)
	assert.Equal(t, SlotClosed, byStart["12:30"].Status)

	// Перерыв кончается ровно в 13:00, дневная сессия не задета
	assert.Equal(t, SlotAvailable, byStart["11:30"].Status)
	assert.Equal(t, SlotAvailable, byStart["14:30"].Status)
}

func TestGenerateSlots_BookedWinsOverClosed(t *testing.T) {
	bookings := []*Booking{{TimeSlot: "12:00"}}
	closures := []*StudioClosure{{StartTime: "12:00", EndTime: "13:00"}}

	slots, err := GenerateSlots(testSchedule(t), bookings, closures)
	require.NoError(t, err)

	byStart := make(map[types.TimeString]Slot)
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.Equal(t, SlotBooked, byStart["12:00"].Status)
	assert.Equal(t, SlotClosed, byStart["12:30"].Status)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	bookings := []*Booking{{TimeSlot: "15:00"}, {TimeSlot: "10:30"}}
	closures := []*StudioClosure{{StartTime: "18:00", EndTime: "19:00"}}

	first, err := GenerateSlots(testSchedule(t), bookings, closures)
	require.NoError(t, err)
	second, err := GenerateSlots(testSchedule(t), bookings, closures)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSchedule_Validate(t *testing.T) {
	valid := testSchedule(t)
	assert.NoError(t, valid.Validate())

	overlapping := Schedule{
		Sessions: []SessionWindow{
			{Start: "10:00", End: "13:00"},
			{Start: "12:00", End: "15:00"},
		},
		SlotDurationMinutes: 30,
		Location:            time.UTC,
	}
	assert.Error(t, overlapping.Validate())

	empty := Schedule{SlotDurationMinutes: 30, Location: time.UTC}
	assert.Error(t, empty.Validate())

	noTimezone := Schedule{
		Sessions:            []SessionWindow{{Start: "10:00", End: "12:00"}},
		SlotDurationMinutes: 30,
	}
	assert.Error(t, noTimezone.Validate())
}
