package create_closure

import (
	"errors"
	"net/http"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
	"github.com/bossbaby/BBS-BookingService/internal/service/closures"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput       = "invalid closure parameters"
)

type Handler struct {
	service ClosuresService
	logger  Logger
}

func NewHandler(service ClosuresService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/closures - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrInvalidInput):
			h.logger.Warn("POST /admin/closures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/closures - Failed to create closure: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/closures - Closure created: closure_id=%d, date=%s", result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainClosure(result))
}
