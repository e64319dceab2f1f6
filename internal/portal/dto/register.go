package dto

import (
	"strings"

	"github.com/MannyGDy/Captive-Portal/pkg/phone"
)

type RegisterInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Company     string `json:"company"`
}

// Normalize trims whitespace, lowercases the email and strips phone
// separators. Called before Validate so the stored form is canonical.
func (in *RegisterInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.PhoneNumber = phone.Normalize(in.PhoneNumber)
	in.Company = strings.TrimSpace(in.Company)
}

func (in RegisterInput) Validate() []FieldError {
	var errs []FieldError
	if !lengthBetween(in.FirstName, 2, 100) {
		errs = append(errs, FieldError{"first_name", "First name must be between 2 and 100 characters"})
	}
	if !lengthBetween(in.LastName, 2, 100) {
		errs = append(errs, FieldError{"last_name", "Last name must be between 2 and 100 characters"})
	}
	if !validEmail(in.Email) {
		errs = append(errs, FieldError{"email", "Please provide a valid email address"})
	}
	if !phone.IsValid(in.PhoneNumber) {
		errs = append(errs, FieldError{"phone_number", "Please provide a valid Nigerian phone number (e.g., 08012345678)"})
	}
	if !lengthBetween(in.Company, 2, 200) {
		errs = append(errs, FieldError{"company", "Company name must be between 2 and 200 characters"})
	}
	return errs
}
