package create_booking

import (
	"context"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// ClosureRepository интерфейс репозитория перерывов студии
type ClosureRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.StudioClosure, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SyncNotifier уведомляет фоновую синхронизацию календаря о новом
// бронировании. Вызов не блокирует и не возвращает ошибок: зеркалирование
// никогда не влияет на ответ клиенту.
type SyncNotifier interface {
	Notify()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
