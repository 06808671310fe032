package domain

import (
	"errors"
	"fmt"
)

// ValidationError rejects a request before any upstream call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Endpoint identifies which upstream call failed.
type Endpoint string

const (
	EndpointText  Endpoint = "text"
	EndpointImage Endpoint = "image"
)

// UpstreamError is any failure of the text or image endpoint.
type UpstreamError struct {
	Endpoint Endpoint
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// FailureKind classifies a failed generation.
type FailureKind string

const (
	FailureValidation FailureKind = "validation"
	FailureUpstream   FailureKind = "upstream"
)

// Failure is the user-facing side of an error.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
	// Field names the rejected input for validation failures.
	Field string `json:"field,omitempty"`
}

// FailureFrom classifies err. Errors that are neither validation nor
// upstream errors are reported as upstream failures.
func FailureFrom(err error) *Failure {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return &Failure{Kind: FailureValidation, Message: vErr.Message, Field: vErr.Field}
	}
	return &Failure{Kind: FailureUpstream, Message: err.Error()}
}
