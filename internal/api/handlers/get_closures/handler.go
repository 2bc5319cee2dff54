package get_closures

import (
	"net/http"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

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

// Handle GET /api/v1/closures?date=YYYY-MM-DD
// Параметр date опционален: без него возвращаются все перерывы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /closures - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /closures - Failed to list closures: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainClosures(result))
}
