// Package middleware содержит HTTP-мидлвари: request id, метрики и
// проверка сессии/прав администратора.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
	"github.com/bossbaby/BBS-BookingService/internal/auth"
	"github.com/bossbaby/BBS-BookingService/pkg/metrics"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionKey   contextKey = "session"

	requestIDHeader = "X-Request-ID"
)

// RequestID проставляет request id в контекст и заголовок ответа.
// Если клиент прислал свой идентификатор - используем его.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext возвращает request id текущего запроса
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics собирает метрики по каждому HTTP-запросу
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			m.ObserveHTTPRequest(r.Method, r.URL.Path, recorder.status, time.Since(start))
		})
	}
}

// SessionProvider извлекает сессию из запроса
type SessionProvider interface {
	GetSession(r *http.Request) (*auth.Session, bool)
}

// Session требует валидную сессию и кладёт её в контекст
func Session(provider SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := provider.GetSession(r)
			if !ok {
				handlers.RespondUnauthorized(w, "authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin пропускает только администраторов. Вешается поверх Session.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		if session == nil {
			handlers.RespondUnauthorized(w, "authentication required")
			return
		}
		if !session.Admin {
			handlers.RespondForbidden(w, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SessionFromContext возвращает сессию текущего запроса или nil
func SessionFromContext(ctx context.Context) *auth.Session {
	if session, ok := ctx.Value(sessionKey).(*auth.Session); ok {
		return session
	}
	return nil
}
