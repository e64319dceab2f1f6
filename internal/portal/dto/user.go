package dto

import (
	"strings"
	"time"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

type UserOutput struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	PhoneNumber      string     `json:"phone_number"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Company          string     `json:"company"`
	IsActive         bool       `json:"is_active"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastLogin        *time.Time `json:"last_login"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:               u.ID,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Company:          u.Company,
		IsActive:         u.IsActive,
		RegistrationDate: u.RegistrationDate,
		LastLogin:        u.LastLogin,
		CreatedAt:        u.CreatedAt,
	}
}

// UpdateUserInput is the typed form of the admin user update. Only
// these four fields are editable; unknown fields in the request body
// are rejected at the boundary.
type UpdateUserInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	IsActive  *bool   `json:"is_active"`
}

func (in UpdateUserInput) Validate() []FieldError {
	var errs []FieldError
	if in.FirstName != nil && !lengthBetween(strings.TrimSpace(*in.FirstName), 2, 100) {
		errs = append(errs, FieldError{"first_name", "First name must be between 2 and 100 characters"})
	}
	if in.LastName != nil && !lengthBetween(strings.TrimSpace(*in.LastName), 2, 100) {
		errs = append(errs, FieldError{"last_name", "Last name must be between 2 and 100 characters"})
	}
	if in.Company != nil && !lengthBetween(strings.TrimSpace(*in.Company), 2, 200) {
		errs = append(errs, FieldError{"company", "Company name must be between 2 and 200 characters"})
	}
	return errs
}

func (in UpdateUserInput) ToDomain() domain.UserUpdate {
	return domain.UserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Company:   in.Company,
		IsActive:  in.IsActive,
	}
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type UserList struct {
	Users      []UserOutput `json:"users"`
	Pagination Pagination   `json:"pagination"`
}

// UserDetail is the admin view of one user together with their session
// history.
type UserDetail struct {
	User     UserOutput      `json:"user"`
	Sessions []SessionOutput `json:"sessions"`
}
