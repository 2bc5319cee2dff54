package closures

import (
	"context"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// ClosureRepository интерфейс репозитория перерывов студии
type ClosureRepository interface {
	Create(ctx context.Context, closure *domain.StudioClosure) (*domain.StudioClosure, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.StudioClosure, error)
	GetAll(ctx context.Context) ([]*domain.StudioClosure, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
