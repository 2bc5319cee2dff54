package get_available_slots

import (
	"context"
	"fmt"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// UseCase use case для получения слотов на день.
// Список слотов - производное представление: он пересчитывается при каждом
// запросе из бронирований и перерывов и нигде не кешируется.
type UseCase struct {
	bookingRepo BookingRepository
	closureRepo ClosureRepository
	txManager   TransactionManager
	schedule    domain.Schedule
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	closureRepo ClosureRepository,
	txManager TransactionManager,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		closureRepo: closureRepo,
		txManager:   txManager,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Читаем бронирования и перерывы из одного снимка данных
	var bookings []*domain.Booking
	var closures []*domain.StudioClosure

	err := uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error

		bookings, err = uc.bookingRepo.GetByDate(ctx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		closures, err = uc.closureRepo.GetByDate(ctx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get closures: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read day data: %v", err)
		return nil, err
	}

	// 3. Генерируем слоты по расписанию студии
	slots, err := domain.GenerateSlots(uc.schedule, bookings, closures)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s (%d bookings, %d closures)",
		len(slots), req.Date.Format(domain.DateFormat), len(bookings), len(closures))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
