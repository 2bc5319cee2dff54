package sync_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	unsynced  []*domain.Booking
	getErr    error
	markErr   error
	synced    map[int64]string
	markCalls int
}

func (f *fakeBookingRepo) GetUnsynced(_ context.Context) ([]*domain.Booking, error) {
	return f.unsynced, f.getErr
}

func (f *fakeBookingRepo) MarkSynced(_ context.Context, id int64, eventID string) error {
	f.markCalls++
	if f.markErr != nil {
		return f.markErr
	}
	if f.synced == nil {
		f.synced = make(map[int64]string)
	}
	f.synced[id] = eventID
	return nil
}

type fakeCalendarClient struct {
	failFor map[int64]error
	calls   map[int64]int
}

func (f *fakeCalendarClient) CreateEvent(_ context.Context, b *domain.Booking) (string, error) {
	if f.calls == nil {
		f.calls = make(map[int64]int)
	}
	f.calls[b.ID]++
	if err, ok := f.failFor[b.ID]; ok {
		return "", err
	}
	return fmt.Sprintf("evt-%d", b.ID), nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func unsyncedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		Date:     time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		TimeSlot: "11:00",
	}
}

func TestExecute_NothingToSync(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeCalendarClient{}, noopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Scanned)
	assert.Zero(t, resp.Synced)
}

func TestExecute_SyncsAllUnsynced(t *testing.T) {
	repo := &fakeBookingRepo{unsynced: []*domain.Booking{
		unsyncedBooking(1), unsyncedBooking(2),
	}}
	client := &fakeCalendarClient{}
	uc := NewUseCase(repo, client, noopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Scanned)
	assert.Equal(t, 2, resp.Synced)
	assert.Equal(t, "evt-1", repo.synced[1])
	assert.Equal(t, "evt-2", repo.synced[2])
}

func TestExecute_PartialFailureLeavesUnsynced(t *testing.T) {
	repo := &fakeBookingRepo{unsynced: []*domain.Booking{
		unsyncedBooking(1), unsyncedBooking(2), unsyncedBooking(3),
	}}
	client := &fakeCalendarClient{failFor: map[int64]error{2: errors.New("calendar unavailable")}}
	uc := NewUseCase(repo, client, noopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err, "mirror failures must not fail the sweep")

	assert.Equal(t, 3, resp.Scanned)
	assert.Equal(t, 2, resp.Synced)
	assert.NotContains(t, repo.synced, int64(2))

	// Ровно одна попытка на бронирование за проход
	assert.Equal(t, 1, client.calls[1])
	assert.Equal(t, 1, client.calls[2])
	assert.Equal(t, 1, client.calls[3])
}

func TestExecute_GetUnsyncedError(t *testing.T) {
	repo := &fakeBookingRepo{getErr: errors.New("connection refused")}
	uc := NewUseCase(repo, &fakeCalendarClient{}, noopLogger{})

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}

func TestNotifier_NonBlocking(t *testing.T) {
	n := NewNotifier()

	// Повторные уведомления без потребителя не блокируют
	for i := 0; i < 10; i++ {
		n.Notify()
	}

	select {
	case <-n.C():
	default:
		t.Fatal("expected pending notification")
	}
}
