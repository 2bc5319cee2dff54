package get_available_slots

import (
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов.
// Слоты идут в каноническом порядке: по сессионным окнам, внутри окна - по
// времени. Каждый слот помечен как available / booked / closed.
type Response struct {
	Date  time.Time
	Slots []domain.Slot
}
