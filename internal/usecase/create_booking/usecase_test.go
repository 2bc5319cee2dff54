package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	bookingRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/booking"
	userRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/user"
	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 42
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakeClosureRepo struct {
	closures []*domain.StudioClosure
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.StudioClosure, error) {
	return f.closures, nil
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

// fakeTxManager выполняет callback без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	notified int
}

func (f *fakeNotifier) Notify() { f.notified++ }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	closures *fakeClosureRepo
	notifier *fakeNotifier
}

// newFixture собирает use case с фиксированным временем 2026-01-16 09:00 UTC
func newFixture(t *testing.T) *fixture {
	t.Helper()

	bookings := &fakeBookingRepo{}
	closures := &fakeClosureRepo{}
	users := &fakeUserRepo{user: &domain.User{ID: 1, Mobile: "9876543210"}}
	notifier := &fakeNotifier{}

	uc := NewUseCase(
		bookings,
		closures,
		users,
		fakeTxManager{},
		notifier,
		domain.DefaultSchedule(time.UTC),
		noopLogger{},
	).WithTimeProvider(fixedTime{now: time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC)})

	return &fixture{uc: uc, bookings: bookings, closures: closures, notifier: notifier}
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		BabyName:  "Aarav",
		BabyAge:   6,
		PhotoType: "newborn",
		Date:      time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "11:00",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, types.TimeString("11:00"), resp.TimeSlot)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.False(t, resp.CalendarSynced)

	// Номер телефона берётся из учетной записи, не из запроса
	assert.Equal(t, "9876543210", resp.MobileNo)
	assert.Equal(t, "9876543210", f.bookings.created.MobileNo)

	// Синхронизация календаря разбужена
	assert.Equal(t, 1, f.notifier.notified)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings = []*domain.Booking{{ID: 7, TimeSlot: "11:00"}}

	req := validRequest()
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, f.notifier.notified)
}

func TestExecute_AdjacentSlotAllowed(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings = []*domain.Booking{{ID: 7, TimeSlot: "11:00"}}

	// Слот 11:30 начинается ровно там, где кончается занятый 11:00-11:30
	req := validRequest()
	req.TimeSlot = "11:30"
	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_StudioClosed(t *testing.T) {
	f := newFixture(t)
	f.closures.closures = []*domain.StudioClosure{{StartTime: "10:30", EndTime: "12:00"}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStudioClosed)
}

func TestExecute_TodayInNegativeOffsetTimezone(t *testing.T) {
	// Студия в зоне с отрицательным смещением: UTC-полночь сегодняшней даты
	// как момент времени раньше местного "сейчас", но календарный день тот же
	loc := time.FixedZone("UTC-5", -5*3600)

	bookings := &fakeBookingRepo{}
	closures := &fakeClosureRepo{}
	users := &fakeUserRepo{user: &domain.User{ID: 1, Mobile: "9876543210"}}
	notifier := &fakeNotifier{}

	uc := NewUseCase(
		bookings, closures, users, fakeTxManager{}, notifier,
		domain.DefaultSchedule(loc), noopLogger{},
	).WithTimeProvider(fixedTime{now: time.Date(2026, 1, 16, 10, 0, 0, 0, loc)})

	req := validRequest()
	req.Date = time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	req.TimeSlot = "11:00"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err, "booking for today must not be rejected as past")

	// Вчерашний день по-прежнему отвергается
	req.Date = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_PastTimeToday(t *testing.T) {
	f := newFixture(t)

	// Сейчас 2026-01-16 12:00, слот 11:00 на сегодня уже прошёл
	f.uc.WithTimeProvider(fixedTime{now: time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC)})

	req := validRequest()
	req.Date = time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastTime)

	// Слот, начинающийся ровно сейчас, тоже считается прошедшим
	req.TimeSlot = "12:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastTime)

	// Следующий слот ещё доступен
	req.TimeSlot = "12:30"
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_InvalidSlot(t *testing.T) {
	f := newFixture(t)

	// Мимо 30-минутной сетки
	req := validRequest()
	req.TimeSlot = "11:15"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	// Вне сессионных окон (13:00-14:30 - обеденный перерыв)
	req.TimeSlot = "13:30"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	// Последний слот дневной сессии кончался бы в 20:30
	req.TimeSlot = "20:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_LostInsertRace(t *testing.T) {
	f := newFixture(t)
	// Конфликт не виден в проверках, но вставка бьётся об уникальный индекс
	f.bookings.createErr = bookingRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, f.notifier.notified)
}

func TestExecute_UserNotFound(t *testing.T) {
	f := newFixture(t)

	users := &fakeUserRepo{err: userRepo.ErrUserNotFound}
	uc := NewUseCase(
		f.bookings, f.closures, users, fakeTxManager{}, f.notifier,
		domain.DefaultSchedule(time.UTC), noopLogger{},
	).WithTimeProvider(fixedTime{now: time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_SchemaValidation(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.BabyName = "A"
	req.BabyAge = -1
	req.PhotoType = "wedding"

	_, err := f.uc.Execute(context.Background(), req)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make(map[string]string)
	for _, fe := range verrs {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "babyName")
	assert.Contains(t, fields, "babyAge")
	assert.Contains(t, fields, "photoType")
}
