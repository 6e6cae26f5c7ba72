package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
// Дата намеренно не ограничивается горизонтом: ядро считает слоты
// детерминированно для любой даты, диапазон браузинга - забота презентации
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
