package reserve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
	slotRepo "github.com/m04kA/Pickleball-BookingService/internal/infra/storage/slot"
	authClient "github.com/m04kA/Pickleball-BookingService/internal/integrations/authservice"
)

// UseCase use case бронирования места в слоте
//
// Списание места и запись бронирования выполняются в ОДНОЙ сериализуемой
// транзакции: если мест не осталось или слот исчез, откатывается всё сразу
// и осиротевших бронирований не остаётся. Исходная система сначала писала
// бронирование и только потом списывала место отдельной транзакцией -
// здесь порядок сознательно обращён
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	authClient  AuthServiceClient
	txManager   TransactionManager
	feedCache   FeedCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// feedCache может быть nil - тогда инвалидация кеша ленты пропускается
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	authClient AuthServiceClient,
	txManager TransactionManager,
	feedCache FeedCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		authClient:  authClient,
		txManager:   txManager,
		feedCache:   feedCache,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования
//
// Гарантия: для любого слота количество успешных бронирований никогда
// не превышает его начальную вместимость, capacity_remaining монотонно
// не возрастает и никогда не отрицателен. Конфликты конкурирующих записей
// повторяются внутри txManager; семантические отказы (SlotFull, SlotNotFound)
// не повторяются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: slot=%s, user=%s", req.SlotID, req.UserID)

	// 1. Валидация: без аутентификации к хранилищу не обращаемся
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Подтверждаем идентификацию во внешнем AuthService
	identity, err := uc.authClient.GetIdentity(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, authClient.ErrIdentityNotFound) {
			uc.logger.Warn("ReserveSlot: identity user=%s not found", req.UserID)
			return nil, ErrNotAuthenticated
		}
		uc.logger.Error("ReserveSlot: failed to resolve identity user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to resolve identity: %v", ErrStoreUnavailable, err)
	}
	if !identity.IsAuthenticated {
		uc.logger.Warn("ReserveSlot: user=%s is not authenticated", req.UserID)
		return nil, ErrNotAuthenticated
	}

	var result *domain.Booking
	var remaining int

	// 3. Списание места и запись бронирования в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем слот с блокировкой строки
		slot, err := uc.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			// Цепочка ошибок сохраняется целиком: конфликт сериализации
			// внутри неё должен остаться видимым менеджеру транзакций
			return fmt.Errorf("%w: failed to read slot: %w", ErrStoreUnavailable, err)
		}

		// 3.2. Проверяем вместимость до записи: при нехватке мест транзакция
		// прерывается без единой изменённой строки
		if slot.IsFull() {
			return ErrSlotFull
		}

		// 3.3. Условное списание - вторая линия защиты от ухода в минус
		if err := uc.slotRepo.DecrementCapacity(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotFull) {
				return ErrSlotFull
			}
			return fmt.Errorf("%w: failed to decrement capacity: %w", ErrStoreUnavailable, err)
		}

		remaining = slot.CapacityRemaining - 1

		// 3.4. Записываем бронирование в той же транзакции
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			SlotID: req.SlotID,
			UserID: req.UserID,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("ReserveSlot: slot=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		case errors.Is(err, ErrSlotFull):
			uc.logger.Warn("ReserveSlot: slot=%s is full", req.SlotID)
			return nil, ErrSlotFull
		case errors.Is(err, ErrStoreUnavailable):
			return nil, err
		default:
			// Исчерпание повторов сериализации и прочие ошибки транзакции
			uc.logger.Error("ReserveSlot: transaction failed for slot=%s: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrStoreUnavailable, err)
		}
	}

	uc.logger.Info("ReserveSlot: created booking id=%s, slot=%s, user=%s, remaining=%d",
		result.ID, req.SlotID, req.UserID, remaining)

	// 4. Сбрасываем кеш ленты, чтобы вместимость в ней не отставала дольше TTL
	if uc.feedCache != nil {
		if err := uc.feedCache.Invalidate(ctx); err != nil {
			uc.logger.Warn("ReserveSlot: feed cache invalidation failed: %v", err)
		}
	}

	return &Response{
		BookingID:         result.ID,
		SlotID:            result.SlotID,
		UserID:            result.UserID,
		CapacityRemaining: remaining,
		CreatedAt:         result.CreatedAt,
	}, nil
}
