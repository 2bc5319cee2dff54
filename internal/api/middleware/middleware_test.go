package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/internal/auth"
)

type fakeSessionProvider struct {
	session *auth.Session
}

func (f *fakeSessionProvider) GetSession(*http.Request) (*auth.Session, bool) {
	return f.session, f.session != nil
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	var gotID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = RequestIDFromContext(r.Context())
	}))

	// Без заголовка генерируется новый идентификатор
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, gotID)
	assert.Equal(t, gotID, w.Header().Get("X-Request-ID"))

	// Клиентский идентификатор сохраняется
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "client-id-1", gotID)
}

func TestSession(t *testing.T) {
	var gotSession *auth.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = SessionFromContext(r.Context())
	})

	// Без сессии - 401
	w := httptest.NewRecorder()
	Session(&fakeSessionProvider{})(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// С сессией - пропускает и кладёт её в контекст
	w = httptest.NewRecorder()
	Session(&fakeSessionProvider{session: &auth.Session{UserID: 7}})(inner).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotSession)
	assert.Equal(t, int64(7), gotSession.UserID)
}

func TestAdmin(t *testing.T) {
	var called bool

	// Обычный пользователь - 403
	w := httptest.NewRecorder()
	chain := Session(&fakeSessionProvider{session: &auth.Session{UserID: 7}})(Admin(okHandler(&called)))
	chain.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)

	// Админ проходит
	w = httptest.NewRecorder()
	chain = Session(&fakeSessionProvider{session: &auth.Session{UserID: 1, Admin: true}})(Admin(okHandler(&called)))
	chain.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)

	// Admin без Session - 401
	w = httptest.NewRecorder()
	Admin(okHandler(&called)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
