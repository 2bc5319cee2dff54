package create_booking

import (
	"fmt"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// validateRequest проверяет схему запроса и собирает ошибки по полям.
// Бизнес-правила (дата в прошлом, занятый слот) проверяются отдельно и позже.
func validateRequest(req *Request) error {
	var errs ValidationErrors

	if req.UserID <= 0 {
		errs = append(errs, FieldError{Field: "userId", Message: "user is required"})
	}

	nameLen := len([]rune(req.BabyName))
	switch {
	case req.BabyName == "":
		errs = append(errs, FieldError{Field: "babyName", Message: "baby name is required"})
	case nameLen < domain.MinBabyNameLength:
		errs = append(errs, FieldError{
			Field:   "babyName",
			Message: fmt.Sprintf("baby name must be at least %d characters", domain.MinBabyNameLength),
		})
	case nameLen > domain.MaxBabyNameLength:
		errs = append(errs, FieldError{
			Field:   "babyName",
			Message: fmt.Sprintf("baby name must be less than %d characters", domain.MaxBabyNameLength),
		})
	}

	if req.BabyAge < domain.MinBabyAge || req.BabyAge > domain.MaxBabyAge {
		errs = append(errs, FieldError{
			Field:   "babyAge",
			Message: fmt.Sprintf("baby age must be between %d and %d", domain.MinBabyAge, domain.MaxBabyAge),
		})
	}

	if req.PhotoType == "" {
		errs = append(errs, FieldError{Field: "photoType", Message: "photo type is required"})
	} else if !domain.IsValidPhotoType(req.PhotoType) {
		errs = append(errs, FieldError{Field: "photoType", Message: "please select a valid photo type"})
	}

	if req.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}

	if req.TimeSlot.IsZero() {
		errs = append(errs, FieldError{Field: "timeSlot", Message: "time slot is required"})
	} else if err := req.TimeSlot.Validate(); err != nil {
		errs = append(errs, FieldError{Field: "timeSlot", Message: "time slot must be in HH:MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
// (сравнение с точностью до дня)
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrPastDate
	}
	return nil
}

// validateTime проверяет, что слот на сегодня начинается строго позже
// текущего времени. Для будущих дат проверка не нужна.
func validateTime(bookingDate time.Time, slot types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}
	if !slot.IsAfter(types.NewTimeString(now)) {
		return ErrPastTime
	}
	return nil
}

// checkBookingConflict проверяет пересечение слота с существующими
// бронированиями через общий предикат пересечения интервалов
func checkBookingConflict(slot domain.Interval, bookings []*domain.Booking, slotDuration int) error {
	for _, b := range bookings {
		iv, err := b.Interval(slotDuration)
		if err != nil {
			// Некорректная запись не должна блокировать весь день
			continue
		}
		if slot.Overlaps(iv) {
			return ErrSlotTaken
		}
	}
	return nil
}

// checkClosureConflict проверяет пересечение слота с перерывами студии
func checkClosureConflict(slot domain.Interval, closures []*domain.StudioClosure) error {
	for _, c := range closures {
		iv, err := c.Interval()
		if err != nil {
			continue
		}
		if slot.Overlaps(iv) {
			return ErrStudioClosed
		}
	}
	return nil
}

// checkSlotMembership повторно генерирует слоты и требует точного совпадения
// с доступным слотом. Дублирует проверки пересечений намеренно: дополнительно
// отсекает время мимо 30-минутной сетки и вне сессионных окон.
func checkSlotMembership(
	schedule domain.Schedule,
	slot types.TimeString,
	bookings []*domain.Booking,
	closures []*domain.StudioClosure,
) error {
	slots, err := domain.GenerateSlots(schedule, bookings, closures)
	if err != nil {
		return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	for i := range slots {
		if slots[i].StartTime == slot && slots[i].IsAvailable() {
			return nil
		}
	}
	return ErrInvalidSlot
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
// Сравниваются компоненты даты, а не моменты времени: дата запроса приходит
// как UTC-полночь, а now живёт в таймзоне студии
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
