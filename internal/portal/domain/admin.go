package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin is a staff account. Username is the login key; the password is
// only ever held as a bcrypt hash.
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminUpdate carries the editable admin fields. Nil means "leave
// unchanged". Password changes go through a dedicated operation.
type AdminUpdate struct {
	Email    *string
	Role     *string
	IsActive *bool
}
