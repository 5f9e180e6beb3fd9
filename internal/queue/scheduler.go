package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const defaultSweepInterval = 15 * time.Minute

// NewScheduler registers the periodic maintenance tasks. Run alongside the
// worker server; asynq enqueues each registered entry on its own schedule.
func NewScheduler(opt asynq.RedisClientOpt, sweepInterval time.Duration, log zerolog.Logger) (*asynq.Scheduler, error) {
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	sched := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				log.Error().Err(err).Msg("scheduler enqueue failed")
			}
		},
	})
	spec := fmt.Sprintf("@every %s", sweepInterval)
	if _, err := sched.Register(spec, NewCartSweepTask()); err != nil {
		return nil, fmt.Errorf("register cart sweep: %w", err)
	}
	return sched, nil
}
