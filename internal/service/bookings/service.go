package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/booking"
	userRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/user"
	"github.com/bossbaby/BBS-BookingService/internal/service/bookings/models"
)

// Таймаут best-effort удаления события из календаря при удалении бронирования
const mirrorDeleteTimeout = 5 * time.Second

// Service сервис чтения и удаления бронирований.
// Создание бронирований живёт отдельно в usecase/create_booking.
type Service struct {
	bookingRepo    BookingRepository
	userRepo       UserRepository
	calendarClient CalendarClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepository BookingRepository,
	userRepository UserRepository,
	calendarClient CalendarClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepository,
		userRepo:       userRepository,
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование, админ - любое.
func (s *Service) GetByID(ctx context.Context, id, requesterID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(requesterID) && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// История ищется по номеру телефона учетной записи: так видны и бронирования,
// сделанные на тот же номер до регистрации.
func (s *Service) GetUserBookings(ctx context.Context, userID, requesterID int64, isAdmin bool) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID != requesterID && !isAdmin {
		s.logger.Warn("GetUserBookings: access denied for user=%d to history of user=%d", requesterID, userID)
		return nil, ErrAccessDenied
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetUserBookings: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUserBookings: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - failed to get user: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByMobile(ctx, user.Mobile)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования для админ-панели, сначала новые
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование (жёсткое удаление).
// Пользователь может удалить только своё бронирование, админ - любое.
// Событие в календаре-зеркале удаляется best-effort: неудача логируется и не
// откатывает удаление.
func (s *Service) Delete(ctx context.Context, id, requesterID int64, isAdmin bool) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", id, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(requesterID) && !isAdmin {
		s.logger.Warn("Delete: access denied for user=%d to booking id=%d", requesterID, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking id=%d", id)

	if booking.CalendarEventID != nil && *booking.CalendarEventID != "" {
		mirrorCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mirrorDeleteTimeout)
		defer cancel()

		if err := s.calendarClient.DeleteEvent(mirrorCtx, *booking.CalendarEventID); err != nil {
			s.logger.Warn("Delete: failed to remove calendar event %s for booking id=%d: %v",
				*booking.CalendarEventID, id, err)
		}
	}

	return nil
}
