package domain

import "time"

// Free-text reminder format: Title | Description | Date | Frequency | Category
const (
	FieldDelimiter     = "|"
	ReminderFieldCount = 5
)

// CommandPrefix marks a message as a bot command rather than reminder input.
const CommandPrefix = "/"

// DisplayDateLayout is the yyyy-MM-dd layout used when rendering reminder dates.
const DisplayDateLayout = "2006-01-02"

// DefaultSendTimeout bounds a single notification attempt.
const DefaultSendTimeout = 30 * time.Second

// DescriptionPlaceholder is shown in listings for reminders without a description.
const DescriptionPlaceholder = "N/A"
