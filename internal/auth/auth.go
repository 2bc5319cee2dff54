package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	userRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/user"
)

const (
	cookieName        = "bbs_session"
	minPasswordLength = 6
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session данные авторизованной сессии, хранятся в securecookie
type Session struct {
	UserID int64
	Admin  bool
}

// Service регистрация, вход и cookie-сессии.
// Пароли хранятся как bcrypt-хеши, сессия - подписанная (и шифрованная, если
// задан block key) cookie.
type Service struct {
	users UserRepository
	sc    *securecookie.SecureCookie
	ttl   time.Duration
	log   Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(users UserRepository, hashKey, blockKey []byte, ttl time.Duration, log Logger) *Service {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(ttl.Seconds()))

	return &Service{
		users: users,
		sc:    sc,
		ttl:   ttl,
		log:   log,
	}
}

// HashPassword хеширует пароль через bcrypt
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword сверяет пароль с bcrypt-хешем
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Register регистрирует нового пользователя по номеру телефона
func (s *Service) Register(ctx context.Context, mobile, password, confirmPassword string) (*domain.User, error) {
	if !domain.MobileNoPattern.MatchString(mobile) {
		return nil, fmt.Errorf("%w: mobile must be a valid 10-digit number", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Mobile:       mobile,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrMobileTaken) {
			s.log.Warn("Register: mobile %s already registered", mobile)
			return nil, ErrMobileTaken
		}
		s.log.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.log.Info("Register: created user id=%d", user.ID)
	return user, nil
}

// Login проверяет учетные данные и возвращает сессию.
// Неизвестный номер и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, mobile, password string) (*Session, error) {
	user, err := s.users.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.log.Warn("Login: unknown mobile %s", mobile)
			return nil, ErrInvalidCredentials
		}
		s.log.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !CheckPassword(user.PasswordHash, password) {
		s.log.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.log.Info("Login: user id=%d logged in", user.ID)
	return &Session{UserID: user.ID, Admin: user.IsAdmin}, nil
}

// SetSession выписывает cookie с сессией
func (s *Service) SetSession(w http.ResponseWriter, r *http.Request, session *Session) error {
	encoded, err := s.sc.Encode(cookieName, session)
	if err != nil {
		return fmt.Errorf("%w: failed to encode session: %v", ErrInternal, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
		MaxAge:   int(s.ttl.Seconds()),
	})
	return nil
}

// ClearSession сбрасывает cookie сессии
func (s *Service) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// GetSession извлекает сессию из cookie запроса
func (s *Service) GetSession(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return nil, false
	}

	var session Session
	if err := s.sc.Decode(cookieName, c.Value, &session); err != nil {
		return nil, false
	}
	return &session, true
}
