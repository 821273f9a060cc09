package entity

import "errors"

// Validation errors returned by ParseReminderInput.
var (
	ErrWrongFieldCount  = errors.New("wrong number of reminder fields")
	ErrEmptyTitle       = errors.New("reminder title is empty")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidCategory  = errors.New("invalid category")
)

var validationErrors = []error{
	ErrWrongFieldCount,
	ErrEmptyTitle,
	ErrInvalidDate,
	ErrInvalidFrequency,
	ErrInvalidCategory,
}

// IsValidationError reports whether err was caused by bad user input.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
