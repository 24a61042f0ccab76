package slotfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Pickleball-BookingService/internal/domain"
)

const (
	// feedKeyPrefix префикс ключей кешированной ленты
	feedKeyPrefix = "feed:upcoming"

	// generationKey ключ счётчика поколений
	// Инвалидация - это инкремент поколения: старые ключи перестают читаться
	// и доживают до истечения TTL
	generationKey = "feed:gen"
)

// ErrUnavailable возвращается при недоступности Redis
// Вызывающий код деградирует к чтению из БД
var ErrUnavailable = errors.New("slotfeed: cache unavailable")

// Cache кеш ленты ближайших событий поверх Redis
// Ключи включают номер поколения, поэтому инвалидация после успешного
// бронирования - одна атомарная операция INCR
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает новый кеш ленты событий
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetUpcoming читает кешированную ленту для указанного лимита
// Возвращает (nil, false, nil) при промахе
func (c *Cache) GetUpcoming(ctx context.Context, limit int) ([]domain.Slot, bool, error) {
	key, err := c.feedKey(ctx, limit)
	if err != nil {
		return nil, false, err
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: GetUpcoming: %v", ErrUnavailable, err)
	}

	var slots []domain.Slot
	if err := json.Unmarshal(payload, &slots); err != nil {
		// Битая запись эквивалентна промаху
		return nil, false, nil
	}

	return slots, true, nil
}

// SetUpcoming сохраняет ленту для указанного лимита с TTL
func (c *Cache) SetUpcoming(ctx context.Context, limit int, slots []domain.Slot) error {
	key, err := c.feedKey(ctx, limit)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("slotfeed: SetUpcoming - marshal: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetUpcoming: %v", ErrUnavailable, err)
	}

	return nil
}

// Invalidate сбрасывает все кешированные ленты
// Вызывается после успешного бронирования, чтобы лента не показывала
// устаревшую вместимость дольше одного TTL
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrUnavailable, err)
	}
	return nil
}

// feedKey строит ключ ленты с учётом текущего поколения
func (c *Cache) feedKey(ctx context.Context, limit int) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: feedKey: %v", ErrUnavailable, err)
	}
	return fmt.Sprintf("%s:%d:%d", feedKeyPrefix, gen, limit), nil
}
