package vdbatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyValueStore is the slice of the Redis command surface the populator
// uses. *redis.Client satisfies it.
type KeyValueStore interface {
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
}

// RedisPopulator rebuilds the key-value database from the entity
// records: one JSON blob per entity under "{kind}:{id}", plus a
// "{kind}:ids" set for enumeration.
type RedisPopulator struct {
	Client  KeyValueStore
	Records *RecordStore
	Logger  *slog.Logger // nil = slog.Default()
}

// PopulateAll rebuilds every entity collection, villagers first.
func (rp *RedisPopulator) PopulateAll(ctx context.Context) error {
	for _, kind := range Kinds {
		if err := rp.Populate(ctx, kind); err != nil {
			return fmt.Errorf("populate %s: %w", kind.Plural(), err)
		}
	}
	return nil
}

// Populate rebuilds one collection. The id set is cleared first so a
// shrunken data dir does not leave stale members; the per-entity keys
// are simply overwritten in place.
func (rp *RedisPopulator) Populate(ctx context.Context, kind Kind) error {
	log := rp.Logger
	if log == nil {
		log = slog.Default()
	}

	idsKey := string(kind) + ":ids"
	if err := rp.Client.Del(ctx, idsKey).Err(); err != nil {
		return fmt.Errorf("clear %s: %w", idsKey, err)
	}

	n := 0
	err := rp.Records.Walk(ctx, kind, func(rec *EntityRecord) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record %q: %w", rec.ID, err)
		}

		key := fmt.Sprintf("%s:%s", kind, rec.ID)
		if err := rp.Client.Set(ctx, key, data, 0).Err(); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		if err := rp.Client.SAdd(ctx, idsKey, string(rec.ID)).Err(); err != nil {
			return fmt.Errorf("add %s to %s: %w", rec.ID, idsKey, err)
		}
		n++
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("collection populated", "kind", kind, "records", n)
	return nil
}
