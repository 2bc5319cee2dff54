package get_available_slots

import (
	"context"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// ClosureRepository интерфейс репозитория перерывов студии
type ClosureRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.StudioClosure, error)
}

// TransactionManager интерфейс менеджера транзакций.
// Чтения выполняются в read-only транзакции, чтобы бронирования и перерывы
// читались из одного снимка данных
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
