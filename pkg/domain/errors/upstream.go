package domain

import (
	"errors"
	"fmt"
)

type upstreamUnavailableError struct {
	Service string
	Err     error
}

func (e *upstreamUnavailableError) Error() string {
	return fmt.Sprintf("%s is unavailable: %v", e.Service, e.Err)
}

func (e *upstreamUnavailableError) Unwrap() error {
	return e.Err
}

func NewUpstreamUnavailableError(service string, err error) error {
	return &upstreamUnavailableError{
		Service: service,
		Err:     err,
	}
}

// IsUpstreamUnavailable matches transport-level failures talking to an
// external collaborator. Callers may retry.
func IsUpstreamUnavailable(err error) bool {
	var target *upstreamUnavailableError
	return errors.As(err, &target)
}

type malformedResponseError struct {
	Service string
	Err     error
}

func (e *malformedResponseError) Error() string {
	return fmt.Sprintf("%s returned a malformed response: %v", e.Service, e.Err)
}

func (e *malformedResponseError) Unwrap() error {
	return e.Err
}

func NewMalformedResponseError(service string, err error) error {
	return &malformedResponseError{
		Service: service,
		Err:     err,
	}
}

// IsMalformedResponse matches structurally invalid output from an external
// collaborator. Retrying is unlikely to help; surfaced separately so callers
// can tell "service down" from "service returned garbage".
func IsMalformedResponse(err error) bool {
	var target *malformedResponseError
	return errors.As(err, &target)
}
