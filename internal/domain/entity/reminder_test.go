package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReminderInput(t *testing.T) {
	type args struct {
		fields []string
		chatID ChatID
		loc    *time.Location
	}
	tests := []struct {
		name    string
		args    args
		want    *Reminder
		wantErr error
	}{
		{
			name: "Should accept the documented example",
			args: args{
				fields: []string{"Pay Rent", "Monthly rent payment", "2024-04-01", "monthly", "bill"},
				chatID: "123456",
			},
			want: &Reminder{
				Title:       "Pay Rent",
				Description: "Monthly rent payment",
				Date:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
				Frequency:   FrequencyMonthly,
				ChatID:      "123456",
				Category:    CategoryBill,
			},
		},
		{
			name: "Should leave description empty when field is blank",
			args: args{
				fields: []string{" Dentist ", "  ", " 2024-06-10T09:30:00 ", " once ", " task "},
				chatID: "42",
			},
			want: &Reminder{
				Title:     "Dentist",
				Date:      time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
				Frequency: FrequencyOnce,
				ChatID:    "42",
				Category:  CategoryTask,
			},
		},
		{
			name: "Should interpret zone-less dates in the given location",
			args: args{
				fields: []string{"Birthday", "", "2024-03-15", "yearly", "task"},
				chatID: "42",
				loc:    time.FixedZone("BRT", -3*60*60),
			},
			want: &Reminder{
				Title:     "Birthday",
				Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.FixedZone("BRT", -3*60*60)),
				Frequency: FrequencyYearly,
				ChatID:    "42",
				Category:  CategoryTask,
			},
		},
		{
			name: "Should keep explicit offsets from RFC3339 input",
			args: args{
				fields: []string{"Call", "", "2024-05-01T08:00:00+02:00", "once", "task"},
				chatID: "42",
			},
			want: &Reminder{
				Title:     "Call",
				Date:      time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC),
				Frequency: FrequencyOnce,
				ChatID:    "42",
				Category:  CategoryTask,
			},
		},
		{
			name:    "Should reject malformed date",
			args:    args{fields: []string{"Pay Rent", "", "not-a-date", "monthly", "bill"}},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "Should reject unknown frequency",
			args:    args{fields: []string{"Pay Rent", "", "2024-04-01", "weekly", "bill"}},
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "Should reject frequency with different case",
			args:    args{fields: []string{"Pay Rent", "", "2024-04-01", "Monthly", "bill"}},
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "Should reject unknown category",
			args:    args{fields: []string{"Pay Rent", "", "2024-04-01", "monthly", "expense"}},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "Should reject empty title",
			args:    args{fields: []string{"  ", "desc", "2024-04-01", "monthly", "bill"}},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "Should reject wrong field count",
			args:    args{fields: []string{"Pay Rent", "2024-04-01", "monthly", "bill"}},
			wantErr: ErrWrongFieldCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReminderInput(tt.args.fields, tt.args.chatID, tt.args.loc)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.want.Title, got.Title)
			assert.Equal(t, tt.want.Description, got.Description)
			assert.True(t, tt.want.Date.Equal(got.Date), "want %v, got %v", tt.want.Date, got.Date)
			assert.Equal(t, tt.want.Frequency, got.Frequency)
			assert.Equal(t, tt.want.ChatID, got.ChatID)
			assert.Equal(t, tt.want.Category, got.Category)
		})
	}
}

func TestParseReminderInput_UniqueIDs(t *testing.T) {
	fields := []string{"Pay Rent", "", "2024-04-01", "monthly", "bill"}
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		r, err := ParseReminderInput(fields, "1", nil)
		require.NoError(t, err)
		require.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestSplitReminderFields(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   []string
		wantOK bool
	}{
		{
			name:   "Should split and trim five fields",
			text:   "Pay Rent | Monthly rent payment | 2024-04-01 | monthly | bill",
			want:   []string{"Pay Rent", "Monthly rent payment", "2024-04-01", "monthly", "bill"},
			wantOK: true,
		},
		{
			name:   "Should keep empty fields",
			text:   "Pay Rent||2024-04-01|monthly|bill",
			want:   []string{"Pay Rent", "", "2024-04-01", "monthly", "bill"},
			wantOK: true,
		},
		{
			name: "Should ignore plain chatter",
			text: "hello there",
		},
		{
			name: "Should ignore six fields",
			text: "a|b|c|d|e|f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SplitReminderFields(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		from   time.Time
		months int
		want   time.Time
	}{
		{
			name:   "Should keep the day of month",
			from:   time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:   "Should clamp to end of February in a leap year",
			from:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Should clamp to end of February in a common year",
			from:   time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Should clamp to a 30 day month",
			from:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Should roll over the year",
			from:   time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Should clamp leap day on a yearly step",
			from:   time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
			months: 12,
			want:   time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.from, tt.months))
		})
	}
}

func TestReminder_NextOccurrence(t *testing.T) {
	date := time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC)

	monthly := &Reminder{Date: date, Frequency: FrequencyMonthly}
	assert.Equal(t, time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), monthly.NextOccurrence())

	yearly := &Reminder{Date: date, Frequency: FrequencyYearly}
	assert.Equal(t, time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC), yearly.NextOccurrence())

	once := &Reminder{Date: date, Frequency: FrequencyOnce}
	assert.Equal(t, date, once.NextOccurrence())
}

func TestReminder_NextOccurrenceAfter(t *testing.T) {
	tests := []struct {
		name     string
		reminder *Reminder
		now      time.Time
		want     time.Time
	}{
		{
			name:     "Should take one step when the next occurrence is ahead",
			reminder: &Reminder{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Frequency: FrequencyMonthly},
			now:      time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Should skip missed monthly occurrences",
			reminder: &Reminder{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Frequency: FrequencyMonthly},
			now:      time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
			want:     time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Should skip an occurrence equal to now",
			reminder: &Reminder{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Frequency: FrequencyMonthly},
			now:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Should not drift after clamping",
			reminder: &Reminder{Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Frequency: FrequencyMonthly},
			now:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Should skip missed yearly occurrences",
			reminder: &Reminder{Date: time.Date(2020, 2, 29, 8, 0, 0, 0, time.UTC), Frequency: FrequencyYearly},
			now:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "Should keep the date of a one-time reminder",
			reminder: &Reminder{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Frequency: FrequencyOnce},
			now:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reminder.NextOccurrenceAfter(tt.now))
		})
	}
}

func TestReminder_NotificationText(t *testing.T) {
	r := &Reminder{Title: "Pay Rent", Description: "Monthly rent payment"}
	assert.Equal(t, "🔔 Reminder: Pay Rent\nMonthly rent payment", r.NotificationText())
}

func TestChatID_JSON(t *testing.T) {
	t.Run("Should write numeric ids as numbers", func(t *testing.T) {
		data, err := json.Marshal(struct {
			ChatID ChatID `json:"chatId"`
		}{ChatID: "123456789"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"chatId":123456789}`, string(data))
	})

	t.Run("Should write channel ids as strings", func(t *testing.T) {
		data, err := json.Marshal(struct {
			ChatID ChatID `json:"chatId"`
		}{ChatID: "C0123ABC"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"chatId":"C0123ABC"}`, string(data))
	})

	t.Run("Should read both forms", func(t *testing.T) {
		var v struct {
			A ChatID `json:"a"`
			B ChatID `json:"b"`
			C ChatID `json:"c"`
		}
		err := json.Unmarshal([]byte(`{"a":-100123,"b":"C0123ABC","c":"42"}`), &v)
		require.NoError(t, err)
		assert.Equal(t, ChatID("-100123"), v.A)
		assert.Equal(t, ChatID("C0123ABC"), v.B)
		assert.Equal(t, ChatID("42"), v.C)
	})

	t.Run("Should reject other types", func(t *testing.T) {
		var c ChatID
		assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &c))
	})
}
