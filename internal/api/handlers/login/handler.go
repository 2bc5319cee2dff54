package login

import (
	"errors"
	"net/http"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
	"github.com/bossbaby/BBS-BookingService/internal/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid mobile number or password"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	UserID int64 `json:"userId"`
	Admin  bool  `json:"admin"`
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := h.authService.SetSession(w, r, session); err != nil {
		h.logger.Error("POST /auth/login - Failed to set session for user id=%d: %v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%d", session.UserID)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		UserID: session.UserID,
		Admin:  session.Admin,
	})
}
