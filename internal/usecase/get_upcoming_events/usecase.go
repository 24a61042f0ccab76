package get_upcoming_events

import (
	"context"
	"fmt"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

// UseCase use case получения ленты ближайших событий
// Объединяет две независимые коллекции (корты и занятия) в одну
// хронологическую ленту
type UseCase struct {
	slotRepo     SlotRepository
	feedCache    FeedCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// feedCache может быть nil - тогда лента всегда читается из БД
func NewUseCase(slotRepo SlotRepository, feedCache FeedCache, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		feedCache:    feedCache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения ленты ближайших событий
// Обе коллекции читаются по принципу "всё или ничего": при ошибке любой
// из выборок возвращается ErrStoreUnavailable, частичная лента не отдаётся
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	limit := req.LimitPerKind
	if limit == 0 {
		limit = domain.DefaultUpcomingLimit
	}
	if limit < 0 || limit > domain.MaxUpcomingLimit {
		uc.logger.Warn("GetUpcomingEvents: invalid limit=%d", limit)
		return nil, fmt.Errorf("%w: limitPerKind must be between 1 and %d", ErrInvalidInput, domain.MaxUpcomingLimit)
	}

	// Сначала пробуем кеш: промах или недоступность кеша - не ошибка
	if uc.feedCache != nil {
		cached, hit, err := uc.feedCache.GetUpcoming(ctx, limit)
		if err != nil {
			uc.logger.Warn("GetUpcomingEvents: cache read failed, falling back to store: %v", err)
		} else if hit {
			uc.logger.Info("GetUpcomingEvents: cache hit, %d events, limit=%d", len(cached), limit)
			return &Response{Events: cached}, nil
		}
	}

	now := uc.timeProvider.Now()

	courts, err := uc.slotRepo.FetchUpcoming(ctx, domain.KindCourt, now, limit)
	if err != nil {
		uc.logger.Error("GetUpcomingEvents: failed to fetch court slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch court slots: %v", ErrStoreUnavailable, err)
	}

	classes, err := uc.slotRepo.FetchUpcoming(ctx, domain.KindClass, now, limit)
	if err != nil {
		uc.logger.Error("GetUpcomingEvents: failed to fetch class slots: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch class slots: %v", ErrStoreUnavailable, err)
	}

	events := mergeSlots(courts, classes)

	uc.logger.Info("GetUpcomingEvents: merged %d courts + %d classes into %d events",
		len(courts), len(classes), len(events))

	if uc.feedCache != nil {
		if err := uc.feedCache.SetUpcoming(ctx, limit, events); err != nil {
			uc.logger.Warn("GetUpcomingEvents: cache write failed: %v", err)
		}
	}

	return &Response{Events: events}, nil
}
