package create_closure

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/internal/service/closures"
	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// CreateClosureRequest HTTP request model
type CreateClosureRequest struct {
	Date      string `json:"date"`      // "2026-01-17"
	StartTime string `json:"startTime"` // "12:00"
	EndTime   string `json:"endTime"`   // "13:00"
	Reason    string `json:"reason,omitempty"`
}

// ClosureResponse HTTP response model
type ClosureResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateClosureRequest) ToServiceRequest() (*closures.CreateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &closures.CreateRequest{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    r.Reason,
	}, nil
}

// FromDomainClosure конвертирует доменную модель в HTTP response
func FromDomainClosure(c *domain.StudioClosure) *ClosureResponse {
	return &ClosureResponse{
		ID:        c.ID,
		Date:      c.Date.Format(domain.DateFormat),
		StartTime: c.StartTime.String(),
		EndTime:   c.EndTime.String(),
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
