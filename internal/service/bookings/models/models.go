package models

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// BookingResponse представление бронирования для выдачи наружу
type BookingResponse struct {
	ID              int64
	UserID          int64
	BabyName        string
	BabyAge         int
	MobileNo        string
	PhotoType       string
	Date            time.Time
	TimeSlot        types.TimeString
	CalendarSynced  bool
	CalendarEventID *string
	CreatedAt       time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		BabyName:        b.BabyName,
		BabyAge:         b.BabyAge,
		MobileNo:        b.MobileNo,
		PhotoType:       b.PhotoType,
		Date:            b.Date,
		TimeSlot:        b.TimeSlot,
		CalendarSynced:  b.CalendarSynced,
		CalendarEventID: b.CalendarEventID,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
