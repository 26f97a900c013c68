package catalogwarm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type catalogWarmer interface {
	WarmCatalog(ctx context.Context) (int, error)
}

// Job keeps the verified catalog cache populated so ranked listings rarely
// fall through to postgres.
type Job struct {
	warmer   catalogWarmer
	interval time.Duration
	logger   *zap.Logger
}

func New(warmer catalogWarmer, interval time.Duration, logger *zap.Logger) *Job {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		warmer:   warmer,
		interval: interval,
		logger:   logger,
	}
}

func (j *Job) Run(ctx context.Context) error {
	if j.warmer == nil {
		return nil
	}

	n, err := j.warmer.WarmCatalog(ctx)
	if err != nil {
		return fmt.Errorf("warm catalog cache: %w", err)
	}
	j.logger.Debug("catalog cache warmed", zap.Int("listings", n))
	return nil
}

// Loop runs the job immediately and then on every tick until ctx is done.
// A non-positive interval disables the loop.
func (j *Job) Loop(ctx context.Context) {
	if j.interval <= 0 || j.warmer == nil {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		if err := j.Run(ctx); err != nil && ctx.Err() == nil {
			j.logger.Warn("catalog warm failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
