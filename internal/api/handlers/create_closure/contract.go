package create_closure

import (
	"context"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/internal/service/closures"
)

type ClosuresService interface {
	Create(ctx context.Context, req *closures.CreateRequest) (*domain.StudioClosure, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
