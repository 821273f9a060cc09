// Package scheduler runs one-shot wake-ups on a robfig/cron loop.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/mudler/xlog"
	"github.com/robfig/cron/v3"
)

// Cron schedules functions to run once at a given instant. Every wake-up is a
// cron entry whose schedule yields a single activation and which removes
// itself after running.
type Cron struct {
	cron *cron.Cron
}

var _ contract.WakeupScheduler = (*Cron)(nil)

func New() *Cron {
	logger := cronLogger{}
	return &Cron{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
	}
}

func (c *Cron) Start() {
	xlog.Info("Wake-up scheduler starting")
	c.cron.Start()
}

// Stop halts the loop. The returned context is done once running jobs finish.
func (c *Cron) Stop() context.Context {
	xlog.Info("Wake-up scheduler stopping")
	return c.cron.Stop()
}

// Schedule arranges for fn to run once at the given time, or as soon as
// possible when it is already in the past. The returned function cancels the
// wake-up if it has not fired yet.
func (c *Cron) Schedule(at time.Time, fn func()) (cancel func()) {
	j := &job{cron: c.cron, fn: fn, idc: make(chan cron.EntryID, 1)}
	id := c.cron.Schedule(&oneShot{at: at}, j)
	j.idc <- id

	return func() {
		c.cron.Remove(id)
	}
}

// oneShot is a cron.Schedule that activates once. cron asks for the next
// activation when the entry is added and again after every run; the zero time
// returned on the second call parks the entry until it is removed.
type oneShot struct {
	at   time.Time
	used atomic.Bool
}

func (s *oneShot) Next(t time.Time) time.Time {
	if !s.used.CompareAndSwap(false, true) {
		return time.Time{}
	}
	if s.at.After(t) {
		return s.at
	}
	return t
}

// job runs fn and then drops its own entry. The entry id is only known once
// cron.Schedule returns, so it is handed over through idc.
type job struct {
	cron *cron.Cron
	fn   func()
	idc  chan cron.EntryID
}

func (j *job) Run() {
	id := <-j.idc
	defer j.cron.Remove(id)
	j.fn()
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	xlog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	xlog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
