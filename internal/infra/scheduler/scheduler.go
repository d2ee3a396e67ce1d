package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultSpec pauses ten minutes between poll cycles.
const DefaultSpec = "@every 10m"

// RetryScheduler decides how long the poll loop sleeps between cycles.
// The pause is measured from the moment a cycle finishes, so cycles never overlap.
type RetryScheduler struct {
	schedule cron.Schedule
	now      func() time.Time
	logger   *logrus.Entry
}

// NewRetryScheduler parses spec with the standard cron parser, which also
// accepts descriptors such as "@every 10m" or "@hourly".
func NewRetryScheduler(spec string, logger *logrus.Entry) (*RetryScheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid retry schedule %q: %w", spec, err)
	}
	return NewRetrySchedulerFromSchedule(schedule, logger), nil
}

func NewRetrySchedulerFromSchedule(schedule cron.Schedule, logger *logrus.Entry) *RetryScheduler {
	return &RetryScheduler{
		schedule: schedule,
		now:      time.Now,
		logger:   logger.WithField("component", "scheduler"),
	}
}

// NextRun reports when the cycle after one finishing at from should start.
func (s *RetryScheduler) NextRun(from time.Time) time.Time {
	return s.schedule.Next(from)
}

// Wait blocks until the next scheduled run. It returns ctx.Err() if ctx is
// cancelled first.
func (s *RetryScheduler) Wait(ctx context.Context) error {
	next := s.NextRun(s.now())
	delay := next.Sub(s.now())
	if delay < 0 {
		delay = 0
	}
	s.logger.WithField("next_run", next.Format(time.RFC3339)).Debugf("Sleeping for %s", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
