package calendar

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// createEventRequest тело запроса на создание события в календаре-зеркале
type createEventRequest struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       string `json:"start"` // RFC3339
	End         string `json:"end"`   // RFC3339
	Timezone    string `json:"timezone"`
}

// createEventResponse ответ сервиса-зеркала
type createEventResponse struct {
	ID string `json:"id"`
}
