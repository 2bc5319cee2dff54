package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	bookingRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/booking"
	userRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/user"
)

// UseCase use case создания бронирования.
//
// Проверки идут строго по порядку и обрываются на первой неудаче - порядок
// определяет, какое именно сообщение увидит клиент:
//  1. схема запроса (по полям)
//  2. дата не в прошлом
//  3. время не в прошлом (для сегодняшней даты)
//  4. пересечение с бронированиями
//  5. пересечение с перерывами студии
//  6. совпадение с доступным слотом расписания
//
// Пункты 4-6 и вставка выполняются в сериализуемой транзакции; проигрыш в
// гонке на уникальном индексе хранилища неотличим для клиента от занятого
// слота.
type UseCase struct {
	bookingRepo  BookingRepository
	closureRepo  ClosureRepository
	userRepo     UserRepository
	txManager    TransactionManager
	syncNotifier SyncNotifier
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	closureRepo ClosureRepository,
	userRepository UserRepository,
	txManager TransactionManager,
	syncNotifier SyncNotifier,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		closureRepo:  closureRepo,
		userRepo:     userRepository,
		txManager:    txManager,
		syncNotifier: syncNotifier,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, slot=%s, type=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.TimeSlot, req.PhotoType)

	// 1. Валидация схемы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем владельца - номер телефона берём из учетной записи,
	// а не из запроса
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
	}

	// 3. Текущее время в таймзоне студии
	now := uc.timeProvider.Now().In(uc.schedule.Location)

	// 4. Дата не в прошлом (с точностью до дня)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: past date %s", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 5. Время не в прошлом (только для сегодняшней даты)
	if err := validateTime(req.Date, req.TimeSlot, now); err != nil {
		uc.logger.Warn("CreateBooking: past time %s on %s", req.TimeSlot, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	slotEnd, err := req.TimeSlot.AddMinutes(uc.schedule.SlotDurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid slot %s: %v", req.TimeSlot, err)
		return nil, ErrInvalidSlot
	}
	slotInterval, err := domain.NewInterval(req.TimeSlot, slotEnd)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid slot interval: %v", err)
		return nil, ErrInvalidSlot
	}

	var result *domain.Booking

	// 6. Проверки занятости и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Существующие бронирования на дату (с блокировкой FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 6.2. Пересечение с бронированиями
		if err := checkBookingConflict(slotInterval, bookings, uc.schedule.SlotDurationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: slot %s on %s already booked", req.TimeSlot, req.Date.Format(domain.DateFormat))
			return err
		}

		// 6.3. Перерывы студии на дату
		closures, err := uc.closureRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get closures: %v", err)
			return fmt.Errorf("%w: failed to get closures: %w", ErrInternal, err)
		}

		// 6.4. Пересечение с перерывами
		if err := checkClosureConflict(slotInterval, closures); err != nil {
			uc.logger.Warn("CreateBooking: studio closed for slot %s on %s", req.TimeSlot, req.Date.Format(domain.DateFormat))
			return err
		}

		// 6.5. Слот должен точно совпадать с доступным слотом расписания.
		// Не доверяем пунктам 6.2-6.4: эта проверка дополнительно отсекает
		// время мимо сетки и вне сессионных окон.
		if err := checkSlotMembership(uc.schedule, req.TimeSlot, bookings, closures); err != nil {
			uc.logger.Warn("CreateBooking: slot %s is not an available schedule slot", req.TimeSlot)
			return err
		}

		// 6.6. Создаем бронирование
		booking := &domain.Booking{
			UserID:         req.UserID,
			BabyName:       req.BabyName,
			BabyAge:        req.BabyAge,
			MobileNo:       user.Mobile,
			PhotoType:      req.PhotoType,
			Date:           req.Date,
			TimeSlot:       req.TimeSlot,
			CalendarSynced: false,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Гонка: параллельный запрос успел первым
				uc.logger.Warn("CreateBooking: lost slot race for %s on %s", req.TimeSlot, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. Будим синхронизацию календаря. Fire-and-forget: бронирование уже
	// зафиксировано, зеркалирование его не касается.
	uc.syncNotifier.Notify()

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		BabyName:        result.BabyName,
		BabyAge:         result.BabyAge,
		MobileNo:        result.MobileNo,
		PhotoType:       result.PhotoType,
		Date:            result.Date,
		TimeSlot:        result.TimeSlot,
		DurationMinutes: uc.schedule.SlotDurationMinutes,
		CalendarSynced:  result.CalendarSynced,
		CreatedAt:       result.CreatedAt,
	}, nil
}
