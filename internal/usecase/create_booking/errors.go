package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserNotFound возвращается, когда владелец бронирования не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrPastDate возвращается, когда дата бронирования в прошлом
	ErrPastDate = errors.New("create_booking: booking date is in the past")

	// ErrPastTime возвращается, когда слот на сегодня уже начался или прошёл
	ErrPastTime = errors.New("create_booking: time slot is in the past")

	// ErrSlotTaken возвращается, когда слот пересекается с существующим
	// бронированием (либо проигран гонке на уровне хранилища)
	ErrSlotTaken = errors.New("create_booking: time slot is already booked")

	// ErrStudioClosed возвращается, когда слот попадает в перерыв студии
	ErrStudioClosed = errors.New("create_booking: studio is closed during this slot")

	// ErrInvalidSlot возвращается, когда время не совпадает ни с одним
	// доступным слотом расписания (мимо сетки или вне сессионных окон)
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldError ошибка валидации конкретного поля запроса
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors набор ошибок схемы запроса. В отличие от бизнес-отказов
// (занятый слот, перерыв) отдаётся клиенту по полям.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "create_booking: validation failed: " + strings.Join(parts, "; ")
}
