package closures

import "errors"

var (
	// ErrClosureNotFound возвращается, когда перерыв не найден
	ErrClosureNotFound = errors.New("closure not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("closures service: internal error")
)
