package sync_calendar

import (
	"net/http"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
)

// SyncResponse HTTP response model
type SyncResponse struct {
	Scanned int `json:"scanned"`
	Synced  int `json:"synced"`
}

type Handler struct {
	useCase SyncCalendarUseCase
	logger  Logger
}

func NewHandler(useCase SyncCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/sync-calendar
// Запускает проход синхронизации немедленно, не дожидаясь фонового воркера.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/sync-calendar - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SyncResponse{
		Scanned: result.Scanned,
		Synced:  result.Synced,
	})
}
