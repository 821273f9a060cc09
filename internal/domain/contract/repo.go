package contract

import (
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

// ReminderStore owns the authoritative reminder collection and its durable copy.
// Every mutation is persisted before it returns. Returned reminders are copies;
// changes must go back through the store.
type ReminderStore interface {
	// Load reads the persisted collection, replacing what is in memory.
	Load() error

	// Save flushes the whole collection to durable storage.
	Save() error

	AddReminder(reminder *entity.Reminder) error

	// RemoveReminder is a no-op when id is unknown.
	RemoveReminder(id string) error

	// UpdateReminderDate moves a reminder to its next occurrence. It returns
	// nil when id is unknown.
	UpdateReminderDate(id string, date time.Time) (*entity.Reminder, error)

	// GetReminder returns nil when id is unknown.
	GetReminder(id string) (*entity.Reminder, error)

	// GetReminders returns the full collection in insertion order.
	GetReminders() ([]*entity.Reminder, error)

	// GetRemindersByChat returns the reminders of a single chat in insertion order.
	GetRemindersByChat(chatID entity.ChatID) ([]*entity.Reminder, error)

	Close() error
}
