package get_booking

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	BabyName        string  `json:"babyName"`
	BabyAge         int     `json:"babyAge"`
	MobileNo        string  `json:"mobileNo"`
	PhotoType       string  `json:"photoType"`
	BookingDate     string  `json:"bookingDate"`
	TimeSlot        string  `json:"timeSlot"`
	CalendarSynced  bool    `json:"calendarSynced"`
	CalendarEventID *string `json:"calendarEventId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		BabyName:        resp.BabyName,
		BabyAge:         resp.BabyAge,
		MobileNo:        resp.MobileNo,
		PhotoType:       resp.PhotoType,
		BookingDate:     resp.Date.Format(domain.DateFormat),
		TimeSlot:        resp.TimeSlot.String(),
		CalendarSynced:  resp.CalendarSynced,
		CalendarEventID: resp.CalendarEventID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
