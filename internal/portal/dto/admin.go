package dto

import (
	"strings"
	"time"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

type AdminLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in AdminLoginInput) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(in.Username) == "" {
		errs = append(errs, FieldError{"username", "Username is required"})
	}
	if in.Password == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	}
	return errs
}

type AdminOutput struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewAdminOutput(a *domain.Admin) AdminOutput {
	return AdminOutput{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		IsActive:  a.IsActive,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}

type AdminAuthResult struct {
	Token string      `json:"token"`
	Admin AdminOutput `json:"admin"`
}

type CreateAdminInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (in CreateAdminInput) Validate() []FieldError {
	var errs []FieldError
	if !lengthBetween(strings.TrimSpace(in.Username), 3, 30) {
		errs = append(errs, FieldError{"username", "Username must be between 3 and 30 characters"})
	}
	if len(in.Password) < 8 {
		errs = append(errs, FieldError{"password", "Password must be at least 8 characters"})
	}
	if !validEmail(strings.ToLower(strings.TrimSpace(in.Email))) {
		errs = append(errs, FieldError{"email", "Please provide a valid email address"})
	}
	if in.Role != "" && in.Role != domain.RoleAdmin && in.Role != domain.RoleSuperAdmin {
		errs = append(errs, FieldError{"role", "Role must be admin or super_admin"})
	}
	return errs
}

type UpdateAdminInput struct {
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (in UpdateAdminInput) Validate() []FieldError {
	var errs []FieldError
	if in.Email != nil && !validEmail(strings.ToLower(strings.TrimSpace(*in.Email))) {
		errs = append(errs, FieldError{"email", "Please provide a valid email address"})
	}
	if in.Role != nil && *in.Role != domain.RoleAdmin && *in.Role != domain.RoleSuperAdmin {
		errs = append(errs, FieldError{"role", "Role must be admin or super_admin"})
	}
	return errs
}

func (in UpdateAdminInput) ToDomain() domain.AdminUpdate {
	return domain.AdminUpdate{
		Email:    in.Email,
		Role:     in.Role,
		IsActive: in.IsActive,
	}
}

type UpdateAdminPasswordInput struct {
	Password string `json:"password"`
}

func (in UpdateAdminPasswordInput) Validate() []FieldError {
	if len(in.Password) < 8 {
		return []FieldError{{"password", "Password must be at least 8 characters"}}
	}
	return nil
}
