package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	userRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/user"
)

type fakeUserRepo struct {
	byMobile map[string]*domain.User
	nextID   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byMobile: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byMobile[user.Mobile]; ok {
		return nil, userRepo.ErrMobileTaken
	}
	created := *user
	created.ID = f.nextID
	f.nextID++
	f.byMobile[created.Mobile] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByMobile(_ context.Context, mobile string) (*domain.User, error) {
	if u, ok := f.byMobile[mobile]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byMobile {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	hashKey := []byte("0123456789abcdef0123456789abcdef")
	blockKey := []byte("0123456789abcdef")
	return NewService(repo, hashKey, blockKey, 24*time.Hour, noopLogger{}), repo
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "9876543210", "secret123", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", user.Mobile)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	// Повторная регистрация на тот же номер
	_, err = svc.Register(ctx, "9876543210", "secret123", "secret123")
	assert.ErrorIs(t, err, ErrMobileTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Номер не подходит под формат: 10 цифр, первая не ноль
	_, err := svc.Register(ctx, "0123456789", "secret123", "secret123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "12345", "secret123", "secret123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Короткий пароль
	_, err = svc.Register(ctx, "9876543210", "12345", "12345")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Пароль и подтверждение не совпадают
	_, err = svc.Register(ctx, "9876543210", "secret123", "secret124")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "9876543210", "secret123", "secret123")
	require.NoError(t, err)

	session, err := svc.Login(ctx, "9876543210", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.False(t, session.Admin)

	// Неверный пароль и неизвестный номер дают одну и ту же ошибку
	_, err = svc.Login(ctx, "9876543210", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "9999999999", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionCookieRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)

	require.NoError(t, svc.SetSession(w, r, &Session{UserID: 7, Admin: true}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "bbs_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// Cookie читается обратно
	r2 := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	r2.AddCookie(cookies[0])

	session, ok := svc.GetSession(r2)
	require.True(t, ok)
	assert.Equal(t, int64(7), session.UserID)
	assert.True(t, session.Admin)

	// Подделанная cookie отбрасывается
	r3 := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	r3.AddCookie(&http.Cookie{Name: "bbs_session", Value: "tampered"})
	_, ok = svc.GetSession(r3)
	assert.False(t, ok)
}

func TestClearSession(t *testing.T) {
	svc, _ := newTestService(t)

	w := httptest.NewRecorder()
	svc.ClearSession(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "bbs_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
