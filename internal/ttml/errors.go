package ttml

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a time expression or timing combination that
	// cannot be interpreted.
	ErrMalformed = errors.New("malformed timing")
	// ErrUnsupported reports frame based timing.
	ErrUnsupported = errors.New("unsupported feature")
	// ErrConfiguration reports a document parameter that is missing or
	// invalid, for example tick based timing without a tick rate.
	ErrConfiguration = errors.New("configuration error")
)

// TimeError describes a single time expression that failed to parse.
type TimeError struct {
	Attr string // attribute the expression came from, may be empty
	Expr string
	Err  error
}

func (e *TimeError) Error() string {
	if e.Attr == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Expr)
	}
	return fmt.Sprintf("%s: %v: %q", e.Attr, e.Err, e.Expr)
}

func (e *TimeError) Unwrap() error {
	return e.Err
}
