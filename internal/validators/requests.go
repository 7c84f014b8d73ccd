package validators

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/epqs-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldToolID          = "tool_id"
	FieldSessionDuration = "session_duration"
	FieldDataSaved       = "data_saved"
	FieldUserID          = "user_id"
)

// Column limits of the users table.
const (
	maxUsernameLen = 50
	maxEmailLen    = 100
)

// RequestValidator implements [Validator] for the catalog's inbound
// requests: login, registration and usage logging.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Without fields, every field of the request is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.UsageEvent:
		return v.validateUsageEvent(value, fields...)
	case *models.UsageEvent:
		return v.validateUsageEvent(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(request.Username) > maxUsernameLen {
				return ErrUsernameTooLong
			}
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
			if utf8.RuneCountInString(request.Email) > maxEmailLen {
				return ErrEmailTooLong
			}
			if !strings.Contains(request.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUsageEvent checks an event built from a log-usage request.
//
// Default validated fields: ToolID, SessionDuration, DataSaved. UserID comes
// from the session and is validated only when asked for.
func (v *RequestValidator) validateUsageEvent(event models.UsageEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToolID, FieldSessionDuration, FieldDataSaved}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if event.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldToolID:
			if event.ToolID <= 0 {
				return ErrInvalidToolID
			}
		case FieldSessionDuration:
			if event.SessionDuration != nil && *event.SessionDuration < 0 {
				return ErrInvalidDuration
			}
		case FieldDataSaved:
			if len(event.DataSaved) > 0 && !json.Valid(event.DataSaved) {
				return ErrInvalidSavedData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
