package get_available_slots

import (
	"github.com/bossbaby/BBS-BookingService/internal/domain"
	getSlots "github.com/bossbaby/BBS-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP представление одного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
}

// GetSlotsResponse HTTP response model
type GetSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *GetSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Status:          string(slot.Status),
			Reason:          slot.Reason,
		}
	}
	return &GetSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
