package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	bookingRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/booking"
	userRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/user"
	"github.com/bossbaby/BBS-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID    map[int64]*domain.Booking
	deleted []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByMobile(_ context.Context, mobileNo string) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.byID {
		if b.MobileNo == mobileNo {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

type fakeCalendarClient struct {
	deletedEvents []string
	err           error
}

func (f *fakeCalendarClient) DeleteEvent(_ context.Context, eventID string) error {
	f.deletedEvents = append(f.deletedEvents, eventID)
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking(id, userID int64, mobile string) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		UserID:   userID,
		MobileNo: mobile,
		Date:     time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		TimeSlot: "11:00",
	}
}

func newTestService() (*Service, *fakeBookingRepo, *fakeCalendarClient) {
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		1: testBooking(1, 10, "9876543210"),
		2: testBooking(2, 20, "9123456780"),
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		10: {ID: 10, Mobile: "9876543210"},
		20: {ID: 20, Mobile: "9123456780"},
	}}
	calendar := &fakeCalendarClient{}
	return NewService(bookings, users, calendar, noopLogger{}), bookings, calendar
}

func TestGetByID_AccessControl(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Владелец видит своё бронирование
	resp, err := svc.GetByID(ctx, 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Чужое бронирование недоступно
	_, err = svc.GetByID(ctx, 2, 10, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админ видит любое
	resp, err = svc.GetByID(ctx, 2, 10, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)

	_, err = svc.GetByID(ctx, 99, 10, true)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.GetUserBookings(ctx, 10, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "9876543210", resp.Bookings[0].MobileNo)

	// Чужая история недоступна обычному пользователю
	_, err = svc.GetUserBookings(ctx, 20, 10, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админу доступна
	_, err = svc.GetUserBookings(ctx, 20, 10, true)
	require.NoError(t, err)

	_, err = svc.GetUserBookings(ctx, 99, 99, false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	svc, bookings, calendar := newTestService()
	ctx := context.Background()

	// Чужое бронирование удалить нельзя
	err := svc.Delete(ctx, 2, 10, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Своё - можно
	require.NoError(t, svc.Delete(ctx, 1, 10, false))
	assert.Equal(t, []int64{1}, bookings.deleted)
	assert.Empty(t, calendar.deletedEvents, "no mirror event to delete")

	err = svc.Delete(ctx, 1, 10, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete_RemovesMirrorEvent(t *testing.T) {
	svc, bookings, calendar := newTestService()
	ctx := context.Background()

	synced := testBooking(3, 10, "9876543210")
	synced.CalendarSynced = true
	synced.CalendarEventID = ptr.Ptr("evt-3")
	bookings.byID[3] = synced

	require.NoError(t, svc.Delete(ctx, 3, 10, false))
	assert.Equal(t, []string{"evt-3"}, calendar.deletedEvents)
}

func TestDelete_MirrorFailureDoesNotFailDelete(t *testing.T) {
	svc, bookings, calendar := newTestService()
	calendar.err = assert.AnError
	ctx := context.Background()

	synced := testBooking(3, 10, "9876543210")
	synced.CalendarEventID = ptr.Ptr("evt-3")
	bookings.byID[3] = synced

	// Бронирование удалено, несмотря на ошибку зеркала
	require.NoError(t, svc.Delete(ctx, 3, 10, false))
	assert.Contains(t, bookings.deleted, int64(3))
}
