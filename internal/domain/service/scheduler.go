package service

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/mudler/xlog"
)

type wakeup struct {
	cancel func()
}

type scheduler struct {
	store       contract.ReminderStore
	notifier    contract.Notifier
	wakeups     contract.WakeupScheduler
	sendTimeout time.Duration
	location    *time.Location
	now         func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending map[string]*wakeup
}

func newScheduler(store contract.ReminderStore, notifier contract.Notifier, wakeups contract.WakeupScheduler, sendTimeout time.Duration, location *time.Location) *scheduler {
	if sendTimeout <= 0 {
		sendTimeout = domain.DefaultSendTimeout
	}
	if location == nil {
		location = time.UTC
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &scheduler{
		store:       store,
		notifier:    notifier,
		wakeups:     wakeups,
		sendTimeout: sendTimeout,
		location:    location,
		now:         time.Now,
		ctx:         ctx,
		cancel:      cancel,
		pending:     make(map[string]*wakeup),
	}
}

func (s *scheduler) Start() {
	xlog.Info("Scheduler starting...")
	s.wakeups.Start()
}

// Stop waits for firings in progress, then aborts anything still sending.
func (s *scheduler) Stop() {
	xlog.Info("Scheduler stopping...")
	<-s.wakeups.Stop().Done()
	s.cancel()
}

// Arm replaces any pending wake-up for reminder.ID with one at reminder.Date.
func (s *scheduler) Arm(reminder *entity.Reminder) {
	if reminder == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.pending[reminder.ID]; ok {
		w.cancel()
		delete(s.pending, reminder.ID)
	}

	id := reminder.ID
	w := &wakeup{}
	w.cancel = s.wakeups.Schedule(reminder.Date, func() {
		s.fire(id, w)
	})
	s.pending[id] = w

	xlog.Debug("Reminder armed", "reminder_id", id, "date", reminder.Date)
}

func (s *scheduler) ArmAll(reminders []*entity.Reminder) {
	for _, r := range reminders {
		s.Arm(r)
	}
	xlog.Info("Reminders armed", "count", len(reminders))
}

// fire delivers the reminder and then removes it (once) or moves it to its
// next future occurrence and arms that. Occurrences missed while the bot was
// down or the date was already past are skipped, so a firing sends exactly
// one notification. The stored record is authoritative, not the copy that
// was armed.
func (s *scheduler) fire(id string, w *wakeup) {
	s.mu.Lock()
	if s.pending[id] == w {
		delete(s.pending, id)
	}
	s.mu.Unlock()

	reminder, err := s.store.GetReminder(id)
	if err != nil {
		xlog.Error("Failed to load reminder for firing", "reminder_id", id, "error", err)
		return
	}
	if reminder == nil {
		xlog.Warn("Reminder no longer exists, skipping", "reminder_id", id)
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.sendTimeout)
	err = s.notifier.Send(ctx, reminder.ChatID, reminder.NotificationText())
	cancel()
	if err != nil {
		xlog.Error("Failed to send reminder", "reminder_id", id, "chat_id", reminder.ChatID, "error", err)
	} else {
		xlog.Info("Reminder sent", "reminder_id", id, "chat_id", reminder.ChatID)
	}

	if !reminder.Frequency.Recurring() {
		if err := s.store.RemoveReminder(id); err != nil {
			xlog.Error("Failed to remove fired reminder", "reminder_id", id, "error", err)
		}
		return
	}

	// stored dates come back with a fixed offset; calendar math must follow
	// the configured zone across DST changes
	reminder.Date = reminder.Date.In(s.location)
	next := reminder.NextOccurrenceAfter(s.now())
	updated, err := s.store.UpdateReminderDate(id, next)
	if err != nil {
		xlog.Error("Failed to persist next occurrence", "reminder_id", id, "date", next, "error", err)
	}
	if updated == nil {
		return
	}

	s.Arm(updated)
}
