package get_closures

import (
	"context"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

type ClosuresService interface {
	List(ctx context.Context, date *time.Time) ([]*domain.StudioClosure, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
