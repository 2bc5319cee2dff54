package sync_calendar

import (
	"context"
	"fmt"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// Response итог одного прохода синхронизации
type Response struct {
	Scanned int // сколько несинхронизированных бронирований найдено
	Synced  int // сколько удалось отразить в календаре
}

// UseCase сверка с внешним календарём.
//
// Идемпотентный проход: выбираем бронирования с calendar_synced=false, для
// каждого ровно одна попытка создать событие. Неудача оставляет флаг снятым -
// бронирование попадёт в следующий проход. Ошибки зеркала никогда не
// прерывают проход целиком.
type UseCase struct {
	bookingRepo    BookingRepository
	calendarClient CalendarClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendarClient CalendarClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// Execute выполняет один проход синхронизации
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	bookings, err := uc.bookingRepo.GetUnsynced(ctx)
	if err != nil {
		uc.logger.Error("SyncCalendar: failed to get unsynced bookings: %v", err)
		return nil, fmt.Errorf("sync_calendar: failed to get unsynced bookings: %w", err)
	}

	resp := &Response{Scanned: len(bookings)}
	if len(bookings) == 0 {
		return resp, nil
	}

	uc.logger.Info("SyncCalendar: found %d unsynced bookings", len(bookings))

	for _, booking := range bookings {
		if ctx.Err() != nil {
			uc.logger.Warn("SyncCalendar: sweep interrupted: %v", ctx.Err())
			return resp, ctx.Err()
		}

		eventID, err := uc.calendarClient.CreateEvent(ctx, booking)
		if err != nil {
			uc.logger.Warn("SyncCalendar: failed to mirror booking id=%d (date=%s, slot=%s): %v",
				booking.ID, booking.Date.Format(domain.DateFormat), booking.TimeSlot, err)
			continue
		}

		if err := uc.bookingRepo.MarkSynced(ctx, booking.ID, eventID); err != nil {
			uc.logger.Error("SyncCalendar: failed to mark booking id=%d as synced: %v", booking.ID, err)
			continue
		}

		uc.logger.Info("SyncCalendar: mirrored booking id=%d, event=%s", booking.ID, eventID)
		resp.Synced++
	}

	uc.logger.Info("SyncCalendar: sweep finished, synced %d/%d", resp.Synced, resp.Scanned)
	return resp, nil
}
