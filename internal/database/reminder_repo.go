package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

const reminderColumns = `id, title, description, date, frequency, chat_id, category`

type reminderRepository struct {
	db dbConn
}

func newReminderRepository(db dbConn) *reminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, title, description, date, frequency, chat_id, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.Title,
		reminder.Description,
		formatDate(reminder.Date),
		string(reminder.Frequency),
		reminder.ChatID.String(),
		string(reminder.Category),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: %s", ErrDuplicateID, reminder.ID)
		}
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

// UpdateDate reports false when no reminder matched id.
func (r *reminderRepository) UpdateDate(ctx context.Context, id string, date time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE reminders SET date = ? WHERE id = ?`, formatDate(date), id)
	if err != nil {
		return false, fmt.Errorf("failed to update reminder date: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows > 0, nil
}

func (r *reminderRepository) GetByID(ctx context.Context, id string) (*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = ?`

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepository) List(ctx context.Context) ([]*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders ORDER BY seq`
	return r.query(ctx, query)
}

func (r *reminderRepository) ListByChat(ctx context.Context, chatID entity.ChatID) ([]*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE chat_id = ? ORDER BY seq`
	return r.query(ctx, query, chatID.String())
}

func (r *reminderRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]*entity.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReminder(row scanner) (*entity.Reminder, error) {
	var (
		reminder  entity.Reminder
		date      string
		frequency string
		chatID    string
		category  string
	)

	err := row.Scan(
		&reminder.ID,
		&reminder.Title,
		&reminder.Description,
		&date,
		&frequency,
		&chatID,
		&category,
	)
	if err != nil {
		return nil, err
	}

	reminder.Date, err = time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reminder date %q: %w", date, err)
	}
	reminder.Frequency = entity.Frequency(frequency)
	reminder.ChatID = entity.ChatID(chatID)
	reminder.Category = entity.Category(category)

	return &reminder, nil
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
