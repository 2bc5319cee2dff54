package register

import (
	"errors"
	"net/http"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
	"github.com/bossbaby/BBS-BookingService/internal/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMobileTaken        = "mobile number already registered"
	msgPasswordMismatch   = "passwords do not match"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	ID     int64  `json:"id"`
	Mobile string `json:"mobile"`
}

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/auth/register
// Успешная регистрация сразу выписывает сессию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Mobile, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMobileTaken):
			h.logger.Warn("POST /auth/register - Mobile already registered")
			handlers.RespondConflict(w, msgMobileTaken)

		case errors.Is(err, auth.ErrPasswordMismatch):
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/register - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	session := &auth.Session{UserID: user.ID, Admin: user.IsAdmin}
	if err := h.authService.SetSession(w, r, session); err != nil {
		h.logger.Error("POST /auth/register - Failed to set session for user id=%d: %v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, &RegisterResponse{
		ID:     user.ID,
		Mobile: user.Mobile,
	})
}
