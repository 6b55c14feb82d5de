package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAddressable is returned for targets that cannot be written in
	// place (anything but a non-nil pointer to a struct).
	ErrNotAddressable = errors.New("target is not a non-nil pointer to a struct")
	// ErrTypeMismatch is returned when a value cannot be assigned to a member.
	ErrTypeMismatch = errors.New("value type does not match member type")
	// ErrUnsupported is returned for member types the registry cannot edit.
	ErrUnsupported = errors.New("unsupported member type")
)

// SchemaError reports a reflection failure on a discovered member: it
// could not be read or written although it passed discovery. These are
// programming errors and are returned to the host instead of being masked.
type SchemaError struct {
	Member string
	Op     string // "get", "set" or "discover"
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Member, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func schemaErr(member, op string, err error) error {
	if err == nil {
		return nil
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return err
	}
	return &SchemaError{Member: member, Op: op, Err: err}
}
