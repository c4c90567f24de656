package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss 該出團日期尚未載入快取，呼叫端應回退到資料庫
var ErrCacheMiss = errors.New("availability not cached")

type CachedAvailability struct {
	Slots        int
	MaxGroupSize int
}

// AvailabilitySlotCache 熱門行程的名額快取：資料庫是唯一的真實來源，
// 快取只加速讀取路徑，名額變動後由呼叫端作廢對應的 key。
type AvailabilitySlotCache interface {
	// 預熱：開放預訂時載入名額到 Redis
	WarmUp(ctx context.Context, availabilityID int, slots int, maxGroupSize int) error
	// 獲取：讀取快取的名額資訊
	Get(ctx context.Context, availabilityID int) (CachedAvailability, error)
	// 作廢：名額變動（確認/取消）後移除快取
	Invalidate(ctx context.Context, availabilityID int) error
}

type AvailabilitySlotCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilitySlotCache(client *redis.Client) AvailabilitySlotCache {
	return &AvailabilitySlotCacheImpl{
		client: client,
		ttl:    30 * time.Minute,
	}
}

// 名額 key
func (c *AvailabilitySlotCacheImpl) getSlotsKey(availabilityID int) string {
	return fmt.Sprintf("availability:%d:slots", availabilityID)
}

func (c *AvailabilitySlotCacheImpl) WarmUp(ctx context.Context, availabilityID int, slots int, maxGroupSize int) error {
	key := c.getSlotsKey(availabilityID)
	err := c.client.HSet(ctx, key, map[string]interface{}{
		"slots":     slots,
		"max_group": maxGroupSize,
	}).Err()
	if err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *AvailabilitySlotCacheImpl) Get(ctx context.Context, availabilityID int) (CachedAvailability, error) {
	key := c.getSlotsKey(availabilityID)
	result, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return CachedAvailability{}, err
	}

	// 檢查 key 是否存在
	if len(result) == 0 {
		return CachedAvailability{}, ErrCacheMiss
	}

	slots, err := strconv.Atoi(result["slots"])
	if err != nil {
		return CachedAvailability{}, fmt.Errorf("invalid slots: %v", err)
	}

	maxGroup, err := strconv.Atoi(result["max_group"])
	if err != nil {
		return CachedAvailability{}, fmt.Errorf("invalid max_group: %v", err)
	}

	return CachedAvailability{
		Slots:        slots,
		MaxGroupSize: maxGroup,
	}, nil
}

func (c *AvailabilitySlotCacheImpl) Invalidate(ctx context.Context, availabilityID int) error {
	return c.client.Del(ctx, c.getSlotsKey(availabilityID)).Err()
}
