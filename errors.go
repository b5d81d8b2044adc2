package bpost

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by the operations the client does not
// support yet.
var ErrNotImplemented = errors.New("not implemented")

// ErrInvalidResponse is returned when a response body lacks the element
// the operation reads its result from.
var ErrInvalidResponse = errors.New("invalid response")

func errNilParam(name string) error {
	return fmt.Errorf("%s is required", name)
}

// BusinessError is the fault returned by the Shipping Manager in place of
// a result, such as an unknown order reference.
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	if len(e.Code) == 0 {
		return fmt.Sprintf("business exception: %s", e.Message)
	}
	return fmt.Sprintf("business exception %s: %s", e.Code, e.Message)
}

// ErrorCode returns the fault code.
func (e *BusinessError) ErrorCode() string { return e.Code }

// ErrorMessage returns the fault message.
func (e *BusinessError) ErrorMessage() string { return e.Message }

// OperationError decorates an error with the name of the operation that
// returned it.
type OperationError struct {
	OperationName string
	Err           error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s, %v", e.OperationName, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error { return e.Err }
