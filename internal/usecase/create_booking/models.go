package create_booking

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// MobileNo клиента не принимается из запроса - он подставляется из учетной
// записи владельца.
type Request struct {
	UserID    int64            // ID владельца бронирования
	BabyName  string           // Имя ребенка
	BabyAge   int              // Возраст (в месяцах)
	PhotoType string           // Тип фотосессии
	Date      time.Time        // Дата бронирования (без времени)
	TimeSlot  types.TimeString // Начало слота (например, "11:30")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	UserID          int64
	BabyName        string
	BabyAge         int
	MobileNo        string
	PhotoType       string
	Date            time.Time
	TimeSlot        types.TimeString
	DurationMinutes int
	CalendarSynced  bool
	CreatedAt       time.Time
}
