package domain

import "time"

// User is a registered network guest. Email and phone number are unique
// and immutable after creation; the phone number is always stored in
// normalized 11-digit form.
type User struct {
	ID               string
	Email            string
	PhoneNumber      string
	FirstName        string
	LastName         string
	Company          string
	IsActive         bool
	RegistrationDate time.Time
	LastLogin        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserUpdate carries the admin-editable user fields. Nil means "leave
// unchanged". Email and phone are deliberately absent.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Company   *string
	IsActive  *bool
}

// UserStats is a single-pass aggregate over the user table.
type UserStats struct {
	TotalUsers     int64
	ActiveUsers    int64
	UsersWithLogin int64
	RecentLogins   int64
}
