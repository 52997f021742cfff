package domain

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// UpstreamError wraps any failure talking to the BRTC API: transport errors
// (Status 0), non-2xx statuses, and undecodable response bodies.
type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e UpstreamError) Error() string {
	switch {
	case e.Status > 0 && e.Op != "":
		return fmt.Sprintf("upstream %s: status %d", e.Op, e.Status)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
	case e.Op != "":
		return fmt.Sprintf("upstream %s failed", e.Op)
	default:
		return "upstream error"
	}
}

func (e UpstreamError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

// UpstreamStatus returns the remote HTTP status when err is an UpstreamError,
// zero otherwise.
func UpstreamStatus(err error) int {
	var target UpstreamError
	if errors.As(err, &target) {
		return target.Status
	}
	return 0
}
