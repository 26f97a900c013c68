package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	minuteWindow = time.Minute
	burstWindow  = 10 * time.Second
)

type WindowStore interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Limiter caps how often a seeker may request compatibility scoring. A zero
// limit disables that window.
type Limiter struct {
	store     WindowStore
	perMinute int
	per10Sec  int
}

func NewLimiter(store WindowStore, perMinute, per10Sec int) *Limiter {
	if perMinute < 0 {
		perMinute = 0
	}
	if per10Sec < 0 {
		per10Sec = 0
	}

	return &Limiter{
		store:     store,
		perMinute: perMinute,
		per10Sec:  per10Sec,
	}
}

// Allow records one request and returns the seconds to wait when over limit.
func (l *Limiter) Allow(ctx context.Context, seekerID uuid.UUID) (int64, bool, error) {
	if seekerID == uuid.Nil {
		return 0, false, fmt.Errorf("invalid seeker id")
	}
	if l.store == nil {
		return 0, false, fmt.Errorf("rate limiter store is nil")
	}

	retryAfterSec := int64(0)
	windows := []struct {
		limit  int
		key    string
		window time.Duration
	}{
		{limit: l.perMinute, key: windowKey("min", seekerID), window: minuteWindow},
		{limit: l.per10Sec, key: windowKey("10s", seekerID), window: burstWindow},
	}

	for _, w := range windows {
		if w.limit <= 0 {
			continue
		}
		count, ttl, err := l.store.IncrementWindow(ctx, w.key, w.window)
		if err != nil {
			return 0, false, err
		}
		if count > int64(w.limit) {
			retryAfterSec = max(retryAfterSec, ceilSeconds(ttl))
		}
	}

	if retryAfterSec > 0 {
		return retryAfterSec, false, nil
	}
	return 0, true, nil
}

func windowKey(window string, seekerID uuid.UUID) string {
	return "rate:scoring:" + window + ":" + seekerID.String()
}

func ceilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 1
	}
	sec := int64(d / time.Second)
	if d%time.Second != 0 {
		sec++
	}
	return sec
}
