package get_user_bookings

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP представление одного бронирования
type BookingResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	BabyName       string `json:"babyName"`
	BabyAge        int    `json:"babyAge"`
	MobileNo       string `json:"mobileNo"`
	PhotoType      string `json:"photoType"`
	BookingDate    string `json:"bookingDate"`
	TimeSlot       string `json:"timeSlot"`
	CalendarSynced bool   `json:"calendarSynced"`
	CreatedAt      string `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	result := make([]BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		result[i] = BookingResponse{
			ID:             b.ID,
			UserID:         b.UserID,
			BabyName:       b.BabyName,
			BabyAge:        b.BabyAge,
			MobileNo:       b.MobileNo,
			PhotoType:      b.PhotoType,
			BookingDate:    b.Date.Format(domain.DateFormat),
			TimeSlot:       b.TimeSlot.String(),
			CalendarSynced: b.CalendarSynced,
			CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    resp.Total,
	}
}
