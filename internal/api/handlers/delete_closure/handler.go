package delete_closure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
	"github.com/bossbaby/BBS-BookingService/internal/service/closures"
)

const (
	msgInvalidClosureID = "invalid closure id"
	msgClosureNotFound  = "closure not found"
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

// Handle DELETE /api/v1/admin/closures/{closureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	closureID, err := strconv.ParseInt(mux.Vars(r)["closureId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClosureID)
		return
	}

	if err := h.service.Delete(r.Context(), closureID); err != nil {
		switch {
		case errors.Is(err, closures.ErrClosureNotFound):
			h.logger.Warn("DELETE /admin/closures/%d - Closure not found", closureID)
			handlers.RespondNotFound(w, msgClosureNotFound)

		default:
			h.logger.Error("DELETE /admin/closures/%d - Failed to delete closure: %v", closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/closures/%d - Closure removed", closureID)
	w.WriteHeader(http.StatusNoContent)
}
