package authservice

import "errors"

var (
	// ErrIdentityNotFound возвращается, когда пользователь не известен AuthService
	ErrIdentityNotFound = errors.New("authservice client: identity not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
