package service

import "errors"

var (
	ErrValidation           = errors.New("validation_error")
	ErrClientNotFound       = errors.New("client_not_found")
	ErrProfessionalNotFound = errors.New("professional_not_found")
	ErrTokenMismatch        = errors.New("token_mismatch")
	ErrUniqueCodeMissing    = errors.New("unique_code_missing")

	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrRegistrationDisabled = errors.New("registration_disabled")
	ErrRegistrationDenied   = errors.New("registration_denied")
	ErrUsernameTaken        = errors.New("username_taken")
)
