// Package optimizer runs the model-backed steps of a CV optimisation and turns
// their replies into typed results.
package optimizer

import "fmt"

// APICallError represents a failed model call
type APICallError struct {
	Step  string
	Cause error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("%s: model call failed: %v", e.Step, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a reply whose document header could not be trusted
type ParseError struct {
	Step  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unusable reply: %v", e.Step, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// StoreError represents a failure to persist a run
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
