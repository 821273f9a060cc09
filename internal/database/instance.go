package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/diegoclair/reminder-bot/migrator/sqlite"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Options selects and configures a reminder store backend.
type Options struct {
	Driver    string
	Path      string
	OnCorrupt OnCorrupt
}

// Open builds the store for opts.Driver. SQLite databases are migrated before
// the store is returned.
func Open(opts Options) (contract.ReminderStore, error) {
	switch opts.Driver {
	case DriverJSON, "":
		return NewJSONStore(opts.Path, opts.OnCorrupt), nil
	case DriverSQLite:
		db, err := New(opts.Path)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLiteStore(db), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
}

// SQLiteStore implements contract.ReminderStore on top of the reminders table.
// Every statement is durable on its own, so Save has nothing to flush.
type SQLiteStore struct {
	db       *DB
	reminder *reminderRepository
	timeout  time.Duration
}

var _ contract.ReminderStore = (*SQLiteStore)(nil)

func NewSQLiteStore(db *DB) *SQLiteStore {
	return &SQLiteStore{
		db:       db,
		reminder: newReminderRepository(db.conn),
		timeout:  5 * time.Second,
	}
}

func (s *SQLiteStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *SQLiteStore) Load() error {
	ctx, cancel := s.ctx()
	defer cancel()

	if err := s.db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Save() error {
	return nil
}

func (s *SQLiteStore) AddReminder(reminder *entity.Reminder) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.reminder.Create(ctx, reminder)
}

func (s *SQLiteStore) RemoveReminder(id string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.reminder.Delete(ctx, id)
}

func (s *SQLiteStore) UpdateReminderDate(id string, date time.Time) (*entity.Reminder, error) {
	ctx, cancel := s.ctx()
	defer cancel()

	var updated *entity.Reminder
	err := s.withTransaction(func(repo *reminderRepository) error {
		found, err := repo.UpdateDate(ctx, id, date)
		if err != nil || !found {
			return err
		}
		updated, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SQLiteStore) GetReminder(id string) (*entity.Reminder, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.reminder.GetByID(ctx, id)
}

func (s *SQLiteStore) GetReminders() ([]*entity.Reminder, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.reminder.List(ctx)
}

func (s *SQLiteStore) GetRemindersByChat(chatID entity.ChatID) ([]*entity.Reminder, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	return s.reminder.ListByChat(ctx, chatID)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// withTransaction executes fn with a repository bound to a single transaction
func (s *SQLiteStore) withTransaction(fn func(repo *reminderRepository) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = fn(newReminderRepository(tx))
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
