package database

import "errors"

// ErrDuplicateID is returned when a reminder with the same id is already stored.
var ErrDuplicateID = errors.New("reminder id already exists")
