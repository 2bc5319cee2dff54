package get_closures

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// ClosureResponse HTTP представление одного перерыва
type ClosureResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ClosureListResponse HTTP response model
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
	Total    int               `json:"total"`
}

// FromDomainClosures конвертирует список доменных моделей в HTTP response
func FromDomainClosures(closures []*domain.StudioClosure) *ClosureListResponse {
	result := make([]ClosureResponse, len(closures))
	for i, c := range closures {
		result[i] = ClosureResponse{
			ID:        c.ID,
			Date:      c.Date.Format(domain.DateFormat),
			StartTime: c.StartTime.String(),
			EndTime:   c.EndTime.String(),
			Reason:    c.Reason,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ClosureListResponse{
		Closures: result,
		Total:    len(result),
	}
}
