package sync_calendar

import (
	"context"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetUnsynced(ctx context.Context) ([]*domain.Booking, error)
	MarkSynced(ctx context.Context, id int64, eventID string) error
}

// CalendarClient интерфейс клиента внешнего календаря-зеркала
type CalendarClient interface {
	CreateEvent(ctx context.Context, booking *domain.Booking) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
