package create_booking

import (
	"errors"
	"net/http"

	"github.com/bossbaby/BBS-BookingService/internal/api/handlers"
	"github.com/bossbaby/BBS-BookingService/internal/api/middleware"
	createBooking "github.com/bossbaby/BBS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgValidationFailed   = "validation failed"
	msgUserNotFound       = "user not found"
	msgPastDate           = "booking date is in the past"
	msgPastTime           = "this time slot has already passed"
	msgSlotTaken          = "this time slot is already booked"
	msgStudioClosed       = "the studio is closed during this slot"
	msgInvalidSlot        = "invalid time slot"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErrs createBooking.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%d, %v", session.UserID, err)
			fields := make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				fields[fe.Field] = fe.Message
			}
			handlers.RespondValidationError(w, msgValidationFailed, fields)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", session.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: user_id=%d, date=%s", session.UserID, req.BookingDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrPastTime):
			h.logger.Warn("POST /bookings - Past time: user_id=%d, slot=%s", session.UserID, req.TimeSlot)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, date=%s, slot=%s",
				session.UserID, req.BookingDate, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrStudioClosed):
			h.logger.Warn("POST /bookings - Studio closed: user_id=%d, date=%s, slot=%s",
				session.UserID, req.BookingDate, req.TimeSlot)
			handlers.RespondBadRequest(w, msgStudioClosed)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: user_id=%d, date=%s, slot=%s",
				session.UserID, req.BookingDate, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v",
				session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, date=%s, slot=%s",
		result.ID, session.UserID, req.BookingDate, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
