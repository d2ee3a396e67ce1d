package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDelay time.Duration

func (d fixedDelay) Next(t time.Time) time.Time { return t.Add(time.Duration(d)) }

func testLogger() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}

func TestDefaultSpecIsTenMinutes(t *testing.T) {
	s, err := NewRetryScheduler("", testLogger())
	require.NoError(t, err)

	from := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, from.Add(600*time.Second), s.NextRun(from))
}

func TestCronSpec(t *testing.T) {
	s, err := NewRetryScheduler("0 * * * *", testLogger())
	require.NoError(t, err)

	from := time.Date(2024, 3, 1, 12, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC), s.NextRun(from))
}

func TestInvalidSpec(t *testing.T) {
	_, err := NewRetryScheduler("every ten minutes", testLogger())
	assert.ErrorContains(t, err, "invalid retry schedule")
}

func TestWaitElapses(t *testing.T) {
	s := NewRetrySchedulerFromSchedule(fixedDelay(10*time.Millisecond), testLogger())

	start := time.Now()
	require.NoError(t, s.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestWaitCancelled(t *testing.T) {
	s := NewRetrySchedulerFromSchedule(fixedDelay(time.Hour), testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Wait(ctx), context.DeadlineExceeded)
}
