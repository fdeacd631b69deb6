package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/manapixels/hair-salon-app-sub002/internal/domain/availability"
)

// Settings caches the per-salon schedule snapshot (weekly template,
// overrides, closed dates, stylist hours). Slot results are never cached
// here: they depend on the live occupancy snapshot.
type Settings struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSettings wraps rdb; a nil client disables caching entirely.
func NewSettings(rdb *redis.Client, ttl time.Duration) *Settings {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Settings{rdb: rdb, ttl: ttl}
}

func key(salonID uint) string {
	return fmt.Sprintf("salon:%d:schedule", salonID)
}

func (s *Settings) Get(ctx context.Context, salonID uint) (availability.Config, bool) {
	if s == nil || s.rdb == nil {
		return availability.Config{}, false
	}

	raw, err := s.rdb.Get(ctx, key(salonID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Uint("salon_id", salonID).Msg("schedule cache read failed")
		}
		return availability.Config{}, false
	}

	var cfg availability.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return availability.Config{}, false
	}
	return cfg, true
}

func (s *Settings) Put(ctx context.Context, salonID uint, cfg availability.Config) {
	if s == nil || s.rdb == nil {
		return
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key(salonID), raw, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Uint("salon_id", salonID).Msg("schedule cache write failed")
	}
}

// Invalidate drops the snapshot after any admin schedule write.
func (s *Settings) Invalidate(ctx context.Context, salonID uint) {
	if s == nil || s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, key(salonID)).Err(); err != nil {
		log.Warn().Err(err).Uint("salon_id", salonID).Msg("schedule cache invalidate failed")
	}
}
