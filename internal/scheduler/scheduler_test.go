package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newStartedCron(t *testing.T) *Cron {
	t.Helper()
	c := New()
	c.Start()
	t.Cleanup(func() {
		<-c.Stop().Done()
	})
	return c
}

func TestCron_Schedule_FiresAtTime(t *testing.T) {
	c := newStartedCron(t)

	var fired atomic.Int32
	at := time.Now().Add(100 * time.Millisecond)
	c.Schedule(at, func() { fired.Add(1) })

	assert.Never(t, func() bool { return fired.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return fired.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestCron_Schedule_PastDueFiresImmediately(t *testing.T) {
	c := newStartedCron(t)

	var fired atomic.Int32
	c.Schedule(time.Now().Add(-24*time.Hour), func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestCron_Schedule_FiresOnce(t *testing.T) {
	c := newStartedCron(t)

	var fired atomic.Int32
	c.Schedule(time.Now().Add(20*time.Millisecond), func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool { return fired.Load() > 1 }, 300*time.Millisecond, 20*time.Millisecond)
	assert.Empty(t, c.cron.Entries())
}

func TestCron_Schedule_Cancel(t *testing.T) {
	c := newStartedCron(t)

	var fired atomic.Int32
	cancel := c.Schedule(time.Now().Add(150*time.Millisecond), func() { fired.Add(1) })
	cancel()

	assert.Never(t, func() bool { return fired.Load() > 0 }, 400*time.Millisecond, 20*time.Millisecond)
}

func TestCron_Schedule_RecoversFromPanic(t *testing.T) {
	c := newStartedCron(t)

	var fired atomic.Int32
	c.Schedule(time.Now(), func() { panic("boom") })
	c.Schedule(time.Now().Add(50*time.Millisecond), func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestOneShot_Next(t *testing.T) {
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	future := &oneShot{at: now.Add(time.Hour)}
	assert.Equal(t, now.Add(time.Hour), future.Next(now))
	assert.True(t, future.Next(now).IsZero())

	past := &oneShot{at: now.Add(-time.Hour)}
	assert.Equal(t, now, past.Next(now))
	assert.True(t, past.Next(now).IsZero())
}
