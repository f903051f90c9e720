package cleanup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type actionPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Job prunes observed actions that are too old to count toward any limit
// window. Hit records are kept forever; only the raw action log is trimmed.
type Job struct {
	actions   actionPruner
	retention time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewActionCleanupJob(actions actionPruner, retention time.Duration, logger *zap.Logger) *Job {
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		actions:   actions,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

func (j *Job) Run(ctx context.Context) error {
	if j.actions == nil {
		return nil
	}

	cutoff := j.now().UTC().Add(-j.retention)
	pruned, err := j.actions.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("cleanup stale user actions: %w", err)
	}
	if pruned > 0 {
		j.logger.Info("cleanup stale user actions completed", zap.Int64("pruned", pruned))
	}

	return nil
}
