package contract

import (
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

type ReminderService interface {
	AddReminder(chatID entity.ChatID, fields []string) (*entity.Reminder, error)
	GetRemindersByChat(chatID entity.ChatID) ([]*entity.Reminder, error)
}

// Scheduler keeps exactly one pending wake-up per active reminder.
type Scheduler interface {
	Start()
	Stop()
	Arm(reminder *entity.Reminder)
	ArmAll(reminders []*entity.Reminder)
}
