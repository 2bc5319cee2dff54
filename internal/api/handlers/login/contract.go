package login

import (
	"context"
	"net/http"

	"github.com/bossbaby/BBS-BookingService/internal/auth"
)

type AuthService interface {
	Login(ctx context.Context, mobile, password string) (*auth.Session, error)
	SetSession(w http.ResponseWriter, r *http.Request, session *auth.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
