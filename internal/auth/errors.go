package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном номере телефона или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrMobileTaken возвращается, когда номер телефона уже зарегистрирован
	ErrMobileTaken = errors.New("auth: mobile number already registered")

	// ErrPasswordMismatch возвращается, когда пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("auth: passwords do not match")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("auth: internal error")
)
