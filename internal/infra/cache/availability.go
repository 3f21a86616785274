package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/types"
)

// ErrCacheMiss ключ отсутствует в кэше
var ErrCacheMiss = errors.New("cache: key not found")

// defaultAvailabilityTTL время жизни кэша доступных слотов по умолчанию
// Короткий TTL страхует от рассинхронизации при пропущенной инвалидации
const defaultAvailabilityTTL = 5 * time.Minute

// AvailabilityCache кэш доступных слотов по датам поверх Redis
// Инвалидируется при любом изменении бронирований на дату
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache создает кэш доступности слотов
// При ttl <= 0 используется значение по умолчанию
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	if ttl <= 0 {
		ttl = defaultAvailabilityTTL
	}
	return &AvailabilityCache{client: client, ttl: ttl}
}

// GetSlots получает закэшированные слоты на дату
// Возвращает ErrCacheMiss, если записи нет
func (c *AvailabilityCache) GetSlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	raw, err := c.client.Get(ctx, slotsKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache: GetSlots - get key: %w", err)
	}

	var slots []types.TimeString
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, fmt.Errorf("cache: GetSlots - decode value: %w", err)
	}

	return slots, nil
}

// SetSlots сохраняет слоты на дату
func (c *AvailabilityCache) SetSlots(ctx context.Context, date time.Time, slots []types.TimeString) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("cache: SetSlots - encode value: %w", err)
	}

	if err := c.client.Set(ctx, slotsKey(date), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: SetSlots - set key: %w", err)
	}

	return nil
}

// InvalidateDate удаляет кэш слотов на дату
// Вызывается после создания, отмены и удаления бронирований
func (c *AvailabilityCache) InvalidateDate(ctx context.Context, date time.Time) error {
	if err := c.client.Del(ctx, slotsKey(date)).Err(); err != nil {
		return fmt.Errorf("cache: InvalidateDate - delete key: %w", err)
	}
	return nil
}

// InvalidateAll удаляет кэш слотов по всем датам
// Вызывается при изменении настроек: старая выдача могла считаться
// по другому расписанию или другому режиму
func (c *AvailabilityCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, slotsKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache: InvalidateAll - delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache: InvalidateAll - scan keys: %w", err)
	}
	return nil
}

const slotsKeyPrefix = "availability:slots:"

func slotsKey(date time.Time) string {
	return slotsKeyPrefix + date.Format(domain.DateFormat)
}
