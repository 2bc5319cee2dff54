package closures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	closureRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/closure"
	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// CreateRequest запрос на объявление перерыва студии
type CreateRequest struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string
}

// Service сервис управления перерывами студии
type Service struct {
	closureRepo ClosureRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса перерывов
func NewService(closureRepository ClosureRepository, logger Logger) *Service {
	return &Service{
		closureRepo: closureRepository,
		logger:      logger,
	}
}

// Create объявляет перерыв студии
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.StudioClosure, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	// Интервал перерыва обязан быть корректным half-open интервалом
	if _, err := domain.NewInterval(req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("Create: invalid closure interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(req.Reason) > domain.MaxClosureReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxClosureReasonLength)
	}

	closure, err := s.closureRepo.Create(ctx, &domain.StudioClosure{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: closure id=%d declared for %s %s-%s",
		closure.ID, closure.Date.Format(domain.DateFormat), closure.StartTime, closure.EndTime)
	return closure, nil
}

// List получает перерывы: все или на конкретную дату
func (s *Service) List(ctx context.Context, date *time.Time) ([]*domain.StudioClosure, error) {
	var (
		closures []*domain.StudioClosure
		err      error
	)

	if date != nil {
		closures, err = s.closureRepo.GetByDate(ctx, *date)
	} else {
		closures, err = s.closureRepo.GetAll(ctx)
	}

	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return closures, nil
}

// Delete удаляет перерыв по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.closureRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("Delete: closure id=%d not found", id)
			return ErrClosureNotFound
		}
		s.logger.Error("Delete: repository error for closure id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: closure id=%d removed", id)
	return nil
}
