// Package validators checks decoded catalog requests before they reach the
// store: login and register credentials and usage events.
//
// A failed check returns one of the sentinels in errors.go. The services
// report it as invalid input, never as a storage failure.
package validators

import "context"

// Validator validates one request value. When fields are given only those
// fields are checked; otherwise every rule for the value's type applies.
// Unsupported types are rejected.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
