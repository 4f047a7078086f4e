package wallet

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const balanceKeyPrefix = "wallet:balance:"

// BalanceCache is a cache-aside store for balance snapshots. Every balance
// mutation must invalidate it. A nil Redis client turns it into a no-op.
type BalanceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBalanceCache creates a balance cache
func NewBalanceCache(rdb *redis.Client, ttl time.Duration) *BalanceCache {
	return &BalanceCache{rdb: rdb, ttl: ttl}
}

func (c *BalanceCache) Get(ctx context.Context, clientID uuid.UUID) (*BalanceResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, balanceKeyPrefix+clientID.String()).Bytes()
	if err != nil {
		return nil, false
	}
	var snapshot BalanceResponse
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, false
	}
	return &snapshot, true
}

func (c *BalanceCache) Set(ctx context.Context, clientID uuid.UUID, snapshot *BalanceResponse) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, balanceKeyPrefix+clientID.String(), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("client_id", clientID.String()).Msg("balance cache set failed")
	}
}

func (c *BalanceCache) Invalidate(ctx context.Context, clientID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, balanceKeyPrefix+clientID.String()).Err(); err != nil {
		log.Warn().Err(err).Str("client_id", clientID.String()).Msg("balance cache invalidation failed")
	}
}
