package service

import (
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
)

type Instance struct {
	Reminder  contract.ReminderService
	Scheduler contract.Scheduler
}

type Options struct {
	// Location interprets dates typed without a zone.
	Location    *time.Location
	SendTimeout time.Duration
}

func NewInstance(store contract.ReminderStore, notifier contract.Notifier, wakeups contract.WakeupScheduler, opts Options) *Instance {
	scheduler := newScheduler(store, notifier, wakeups, opts.SendTimeout, opts.Location)

	return &Instance{
		Reminder:  newReminder(store, scheduler, opts.Location),
		Scheduler: scheduler,
	}
}
