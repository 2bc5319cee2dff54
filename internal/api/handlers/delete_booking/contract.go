package delete_booking

import "context"

type BookingsService interface {
	Delete(ctx context.Context, id, requesterID int64, isAdmin bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
