// Package kioskerrors carries the error shape shared by the use cases: the
// originating component, the call site, and a message safe to show an operator.
package kioskerrors

import "fmt"

// InternalError -.
type InternalError struct {
	File          string
	Call          string
	Function      string
	Message       string
	OriginalError error
}

// CreateConsoleError returns an error template tagged with the component name.
func CreateConsoleError(file string) InternalError {
	return InternalError{File: file}
}

func (e InternalError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("%s - %s - %s", e.File, e.Call, e.Function)
	}

	return fmt.Sprintf("%s - %s - %s: %v", e.File, e.Call, e.Function, e.OriginalError)
}

// Unwrap -.
func (e InternalError) Unwrap() error {
	return e.OriginalError
}

// Wrap records where err happened. The receiver is a copy held by the caller,
// so templates declared as package variables are not mutated.
func (e *InternalError) Wrap(call, function string, err error) error {
	e.Call = call
	e.Function = function
	e.OriginalError = err

	return e
}

// FriendlyMessage -.
func (e InternalError) FriendlyMessage() string {
	return e.Message
}
