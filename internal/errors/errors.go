package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")
	ErrUsernameTaken          = errors.New("username already exists")
	ErrInvalidPhoneFormat     = errors.New("invalid Nigerian phone number format")
	ErrInvalidCredentials     = errors.New("invalid credentials or account is inactive")
	ErrUserNotFound           = errors.New("user not found")
	ErrAdminNotFound          = errors.New("admin not found")
	ErrSettingNotFound        = errors.New("setting not found")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenInvalid           = errors.New("invalid token")
	ErrNoFieldsToUpdate       = errors.New("no valid fields to update")
)
