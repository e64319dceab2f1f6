package dto

import (
	"strings"

	"github.com/MannyGDy/Captive-Portal/pkg/phone"
)

type LoginInput struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`

	// Request metadata captured by the handler, not client-settable.
	IPAddress        string `json:"-"`
	MACAddress       string `json:"-"`
	GatewaySessionID string `json:"-"`
}

func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.PhoneNumber = phone.Normalize(in.PhoneNumber)
}

func (in LoginInput) Validate() []FieldError {
	var errs []FieldError
	if !validEmail(in.Email) {
		errs = append(errs, FieldError{"email", "Please provide a valid email address"})
	}
	if !phone.IsValid(in.PhoneNumber) {
		errs = append(errs, FieldError{"phone_number", "Please provide a valid Nigerian phone number"})
	}
	return errs
}

// AuthResult is the token-plus-identity payload returned by register
// and login.
type AuthResult struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}
