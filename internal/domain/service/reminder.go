package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/mudler/xlog"
)

type reminderService struct {
	store     contract.ReminderStore
	scheduler contract.Scheduler
	location  *time.Location
}

func newReminder(store contract.ReminderStore, scheduler contract.Scheduler, location *time.Location) *reminderService {
	if location == nil {
		location = time.UTC
	}
	return &reminderService{
		store:     store,
		scheduler: scheduler,
		location:  location,
	}
}

// AddReminder parses fields, persists the reminder and arms it. Parse failures
// are returned unwrapped so callers can test them with entity.IsValidationError.
func (s *reminderService) AddReminder(chatID entity.ChatID, fields []string) (*entity.Reminder, error) {
	reminder, err := entity.ParseReminderInput(fields, chatID, s.location)
	if err != nil {
		return nil, err
	}

	if err := s.store.AddReminder(reminder); err != nil {
		return nil, fmt.Errorf("failed to store reminder: %w", err)
	}

	s.scheduler.Arm(reminder)

	xlog.Info("Reminder created", "reminder_id", reminder.ID, "chat_id", chatID, "frequency", reminder.Frequency, "date", reminder.Date)
	return reminder, nil
}

func (s *reminderService) GetRemindersByChat(chatID entity.ChatID) ([]*entity.Reminder, error) {
	reminders, err := s.store.GetRemindersByChat(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	return reminders, nil
}
