package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/mudler/xlog"
)

// OnCorrupt decides what Load does with an unreadable store file.
type OnCorrupt string

const (
	OnCorruptReset OnCorrupt = "reset"
	OnCorruptFail  OnCorrupt = "fail"
)

// JSONStore keeps every reminder in memory and mirrors the whole collection
// to a single JSON document after each mutation.
type JSONStore struct {
	filePath  string
	onCorrupt OnCorrupt
	mu        sync.RWMutex
	data      *storeData
}

type storeData struct {
	Reminders []*entity.Reminder `json:"reminders"`
}

var _ contract.ReminderStore = (*JSONStore)(nil)

func NewJSONStore(filePath string, onCorrupt OnCorrupt) *JSONStore {
	if onCorrupt == "" {
		onCorrupt = OnCorruptReset
	}
	return &JSONStore{
		filePath:  filePath,
		onCorrupt: onCorrupt,
		data:      &storeData{Reminders: make([]*entity.Reminder, 0)},
	}
}

// Load replaces the in-memory collection with the contents of the store file.
// A missing file yields an empty collection.
func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = &storeData{Reminders: make([]*entity.Reminder, 0)}

	raw, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		xlog.Debug("Store file not found, starting empty", "path", s.filePath)
		return nil
	}
	if err != nil {
		return s.corrupt(fmt.Errorf("failed to read store file: %w", err))
	}

	var data storeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return s.corrupt(fmt.Errorf("failed to parse store file: %w", err))
	}

	seen := make(map[string]bool, len(data.Reminders))
	for _, r := range data.Reminders {
		if r == nil {
			continue
		}
		if seen[r.ID] {
			xlog.Warn("Skipping duplicate reminder in store file", "reminder_id", r.ID)
			continue
		}
		seen[r.ID] = true
		s.data.Reminders = append(s.data.Reminders, r)
	}

	xlog.Debug("Store loaded", "path", s.filePath, "reminders", len(s.data.Reminders))
	return nil
}

func (s *JSONStore) corrupt(err error) error {
	if s.onCorrupt == OnCorruptFail {
		return err
	}
	xlog.Warn("Store file unreadable, starting empty", "path", s.filePath, "error", err)
	return nil
}

func (s *JSONStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes to a sibling temp file and renames it over the store file.
// Callers must hold s.mu.
func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reminders: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

func (s *JSONStore) AddReminder(reminder *entity.Reminder) error {
	if reminder == nil {
		return errors.New("reminder is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(reminder.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, reminder.ID)
	}

	s.data.Reminders = append(s.data.Reminders, reminder.Clone())
	if err := s.save(); err != nil {
		s.data.Reminders = s.data.Reminders[:len(s.data.Reminders)-1]
		return err
	}
	return nil
}

func (s *JSONStore) RemoveReminder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.data.Reminders = slices.Delete(s.data.Reminders, i, i+1)
	return s.save()
}

func (s *JSONStore) UpdateReminderDate(id string, date time.Time) (*entity.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	s.data.Reminders[i].Date = date
	updated := s.data.Reminders[i].Clone()
	if err := s.save(); err != nil {
		return updated, err
	}
	return updated, nil
}

func (s *JSONStore) GetReminder(id string) (*entity.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.data.Reminders[i].Clone(), nil
	}
	return nil, nil
}

func (s *JSONStore) GetReminders() ([]*entity.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]*entity.Reminder, 0, len(s.data.Reminders))
	for _, r := range s.data.Reminders {
		reminders = append(reminders, r.Clone())
	}
	return reminders, nil
}

func (s *JSONStore) GetRemindersByChat(chatID entity.ChatID) ([]*entity.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]*entity.Reminder, 0)
	for _, r := range s.data.Reminders {
		if r.ChatID == chatID {
			reminders = append(reminders, r.Clone())
		}
	}
	return reminders, nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) indexOf(id string) int {
	return slices.IndexFunc(s.data.Reminders, func(r *entity.Reminder) bool {
		return r.ID == id
	})
}
