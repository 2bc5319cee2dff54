package register

import (
	"context"
	"net/http"

	"github.com/bossbaby/BBS-BookingService/internal/auth"
	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, mobile, password, confirmPassword string) (*domain.User, error)
	SetSession(w http.ResponseWriter, r *http.Request, session *auth.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
