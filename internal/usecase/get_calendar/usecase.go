package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// minYear и maxYear разумные границы запрашиваемого года
const (
	minYear = 2000
	maxYear = 2100
)

// UseCase use case получения календаря доступности кортов на месяц
// Окно пересчитывается при каждом запросе - состояние между запросами
// не сохраняется
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case получения календаря
// При ошибке чтения окна возвращается ErrStoreUnavailable - календарь
// без данных о доступности не отдаётся
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	from, to := monthWindow(req.Year, req.Month)

	slots, err := uc.slotRepo.FetchWindow(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to fetch window %d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: failed to fetch month window: %v", ErrStoreUnavailable, err)
	}

	days := indexByDay(slots, req.Year, req.Month)

	uc.logger.Info("GetCalendar: indexed %d slots into %d days for %d-%02d",
		len(slots), len(days), req.Year, req.Month)

	return &Response{
		Year:         req.Year,
		Month:        req.Month,
		Days:         days,
		FirstWeekday: domain.FirstWeekday(req.Year, req.Month),
		GridRows:     domain.CalendarGridRows,
		GridCols:     domain.CalendarGridCols,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	return nil
}
