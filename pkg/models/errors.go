package models

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrInference  = errors.New("entity inference failed")
)

// InferenceError records which document failed. The index is for logging only and is
// never returned to API callers.
type InferenceError struct {
	Index int
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed on document %d: %v", e.Index, e.Err)
}

func (e *InferenceError) Unwrap() []error {
	return []error{ErrInference, e.Err}
}

func NewInferenceError(index int, err error) error {
	return &InferenceError{Index: index, Err: err}
}

// ValidationError describes one request field that failed validation.
type ValidationError struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}

// HTTPValidationError is the response body returned for invalid requests.
type HTTPValidationError struct {
	Detail []ValidationError `json:"detail"`
}

func (e *HTTPValidationError) Error() string {
	if len(e.Detail) == 0 {
		return ErrBadRequest.Error()
	}
	return fmt.Sprintf("%s: %s", ErrBadRequest, e.Detail[0].Msg)
}

func (e *HTTPValidationError) Unwrap() error {
	return ErrBadRequest
}
