package calendar

import "errors"

var (
	// ErrUnavailable возвращается, когда сервис-зеркало календаря недоступен
	// (ошибка транспорта или 5xx). Создание бронирования от этого не падает.
	ErrUnavailable = errors.New("calendar.client: mirror service unavailable")

	// ErrEventNotFound возвращается при удалении несуществующего события
	ErrEventNotFound = errors.New("calendar.client: event not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("calendar.client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendar.client: internal error")
)
