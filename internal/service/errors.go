package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")
	ErrUsernameTaken       = errors.New("username or email already exists")

	ErrSessionCreationFailed     = errors.New("session creation failed")
	ErrSessionIsExpiredOrInvalid = errors.New("session is expired or invalid")
	ErrNotAuthenticated          = errors.New("not authenticated")

	ErrUnknownReference = errors.New("unknown tool or user")

	// ErrStorageUnavailable is returned when the operation needs a database
	// and none is connected.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
