package dto

import "github.com/nmgaston/protect-kiosk/pkg/kioskerrors"

// NotValidError marks input the operator has to correct.
type NotValidError struct {
	Console kioskerrors.InternalError
}

func (e NotValidError) Error() string {
	return e.Console.Error()
}

func (e NotValidError) Unwrap() error {
	return e.Console.OriginalError
}

// Wrap records the call site and sets the message shown to the operator.
func (e NotValidError) Wrap(call, function, message string) error {
	_ = e.Console.Wrap(call, function, nil)
	e.Console.Message = message

	return e
}
