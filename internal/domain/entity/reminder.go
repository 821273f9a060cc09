package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is one of the known frequencies. Matching is case-sensitive.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Recurring reports whether a reminder with this frequency survives its firing.
func (f Frequency) Recurring() bool {
	return f == FrequencyMonthly || f == FrequencyYearly
}

type Category string

const (
	CategoryTask Category = "task"
	CategoryBill Category = "bill"
)

func (c Category) Valid() bool {
	return c == CategoryTask || c == CategoryBill
}

// ChatID identifies the conversation a reminder belongs to. Telegram chat ids
// are decimal integers, Slack channel ids are plain strings.
type ChatID string

// MarshalJSON writes numeric chat ids as JSON numbers so documents stay
// readable by tools that expect Telegram's integer ids.
func (c ChatID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(c), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(c))
}

func (c *ChatID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*c = ChatID(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("chat id must be a number or a string: %w", err)
	}
	*c = ChatID(s)
	return nil
}

func (c ChatID) String() string {
	return string(c)
}

// Reminder is a scheduled notification for a single chat. For recurring
// reminders Date always holds the next pending occurrence.
type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Frequency   Frequency `json:"frequency"`
	ChatID      ChatID    `json:"chatId"`
	Category    Category  `json:"category"`
}

// Clone returns a copy that can be handed out without exposing the original.
func (r *Reminder) Clone() *Reminder {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// NextOccurrence returns the date following r.Date according to r.Frequency.
// One-time reminders have no next occurrence and return r.Date unchanged.
func (r *Reminder) NextOccurrence() time.Time {
	if step := r.Frequency.stepMonths(); step > 0 {
		return AddMonths(r.Date, step)
	}
	return r.Date
}

// NextOccurrenceAfter returns the first occurrence following r.Date that is
// strictly after now, skipping every occurrence missed in between. Each
// candidate is counted from r.Date so clamped days do not drift (Jan 31 gives
// Feb 29, then Mar 31). One-time reminders return r.Date unchanged.
func (r *Reminder) NextOccurrenceAfter(now time.Time) time.Time {
	step := r.Frequency.stepMonths()
	if step == 0 {
		return r.Date
	}

	next := r.NextOccurrence()
	for n := 2; !next.After(now); n++ {
		next = AddMonths(r.Date, n*step)
	}
	return next
}

func (f Frequency) stepMonths() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyYearly:
		return 12
	}
	return 0
}

// NotificationText renders the message pushed to the chat when r fires.
func (r *Reminder) NotificationText() string {
	return fmt.Sprintf("🔔 Reminder: %s\n%s", r.Title, r.Description)
}

// AddMonths moves t by the given number of calendar months, keeping the time
// of day. When the target month is shorter, the day is clamped to its last
// day (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month(), t.Location()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// SplitReminderFields splits a free-text message on the field delimiter and
// trims every field. ok is false unless exactly domain.ReminderFieldCount
// fields were found.
func SplitReminderFields(text string) (fields []string, ok bool) {
	parts := strings.Split(text, domain.FieldDelimiter)
	if len(parts) != domain.ReminderFieldCount {
		return nil, false
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// ParseReminderInput validates the fields [title, description, date,
// frequency, category] and builds a new reminder for chatID with a fresh id.
// Dates without a zone are interpreted in loc (UTC when nil).
func ParseReminderInput(fields []string, chatID ChatID, loc *time.Location) (*Reminder, error) {
	if len(fields) != domain.ReminderFieldCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongFieldCount, len(fields), domain.ReminderFieldCount)
	}

	title := strings.TrimSpace(fields[0])
	description := strings.TrimSpace(fields[1])
	dateStr := strings.TrimSpace(fields[2])
	frequency := Frequency(strings.TrimSpace(fields[3]))
	category := Category(strings.TrimSpace(fields[4]))

	if title == "" {
		return nil, ErrEmptyTitle
	}

	if loc == nil {
		loc = time.UTC
	}
	date, err := cast.StringToDateInDefaultLocation(dateStr, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}

	if !frequency.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, frequency)
	}

	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	return &Reminder{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Date:        date,
		Frequency:   frequency,
		ChatID:      chatID,
		Category:    category,
	}, nil
}
