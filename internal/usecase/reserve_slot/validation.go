package reserve_slot

import "fmt"

// validateRequest валидирует входные данные запроса
// Пустой UserID - это отсутствие аутентификации, а не ошибка формата:
// различие важно для вызывающего кода (401 против 400)
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return ErrNotAuthenticated
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	return nil
}
