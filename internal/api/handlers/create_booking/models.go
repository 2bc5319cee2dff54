package create_booking

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	createBooking "github.com/bossbaby/BBS-BookingService/internal/usecase/create_booking"
	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Владелец бронирования берётся из сессии, номер телефона - из его учетной
// записи, поэтому в теле их нет.
type CreateBookingRequest struct {
	BabyName    string `json:"babyName"`
	BabyAge     int    `json:"babyAge"`
	PhotoType   string `json:"photoType"`
	BookingDate string `json:"bookingDate"` // "2026-01-17"
	TimeSlot    string `json:"timeSlot"`    // "11:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	BabyName        string `json:"babyName"`
	BabyAge         int    `json:"babyAge"`
	MobileNo        string `json:"mobileNo"`
	PhotoType       string `json:"photoType"`
	BookingDate     string `json:"bookingDate"`
	TimeSlot        string `json:"timeSlot"`
	DurationMinutes int    `json:"durationMinutes"`
	CalendarSynced  bool   `json:"calendarSynced"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		BabyName:  r.BabyName,
		BabyAge:   r.BabyAge,
		PhotoType: r.PhotoType,
		Date:      bookingDate,
		TimeSlot:  timeSlot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		BabyName:        resp.BabyName,
		BabyAge:         resp.BabyAge,
		MobileNo:        resp.MobileNo,
		PhotoType:       resp.PhotoType,
		BookingDate:     resp.Date.Format(domain.DateFormat),
		TimeSlot:        resp.TimeSlot.String(),
		DurationMinutes: resp.DurationMinutes,
		CalendarSynced:  resp.CalendarSynced,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
