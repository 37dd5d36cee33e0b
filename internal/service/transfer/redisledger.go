package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ledgerKeyPrefix = "transfer:"

type redisLedger struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisLedger stores outcomes as JSON under "transfer:<id>" with a TTL, so
// status lookups work across instances and restarts.
func NewRedisLedger(rdb *redis.Client, ttl time.Duration) Ledger {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &redisLedger{rdb: rdb, ttl: ttl}
}

func (l *redisLedger) Record(ctx context.Context, outcome *Outcome) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal transfer outcome: %w", err)
	}

	if err := l.rdb.Set(ctx, ledgerKeyPrefix+outcome.TransferID, payload, l.ttl).Err(); err != nil {
		return fmt.Errorf("record transfer outcome: %w", err)
	}
	return nil
}

func (l *redisLedger) Find(ctx context.Context, transferID string) (*Outcome, error) {
	payload, err := l.rdb.Get(ctx, ledgerKeyPrefix+transferID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUnknownTransfer
		}
		return nil, fmt.Errorf("find transfer outcome: %w", err)
	}

	var outcome Outcome
	if err := json.Unmarshal(payload, &outcome); err != nil {
		return nil, fmt.Errorf("unmarshal transfer outcome: %w", err)
	}
	return &outcome, nil
}
