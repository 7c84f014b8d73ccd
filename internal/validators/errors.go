package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmailTooLong     = errors.New("email is too long")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidToolID    = errors.New("toolId is required")
	ErrInvalidDuration  = errors.New("sessionDuration must not be negative")
	ErrInvalidSavedData = errors.New("dataSaved must be valid JSON")
)
