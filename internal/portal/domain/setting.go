package domain

import "time"

// Setting is one key-value row of portal configuration.
type Setting struct {
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}
