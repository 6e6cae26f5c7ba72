package profileservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrPetNotFound возвращается, когда питомец не найден у клиента
	ErrPetNotFound = errors.New("pet not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")
)
