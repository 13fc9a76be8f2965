package server

import (
	"errors"
	"fmt"
)

// BindError indicates that a listener could not be bound, typically because the port is
// already in use or the process lacks permission to bind it.
type BindError struct {
	// Address is the listen address that was attempted
	Address string

	// Err is the underlying error from the network stack
	Err error
}

func (be *BindError) Error() string {
	return fmt.Sprintf("unable to bind [%s]: %s", be.Address, be.Err)
}

func (be *BindError) Unwrap() error {
	return be.Err
}

// Cause supports github.com/pkg/errors.Cause
func (be *BindError) Cause() error {
	return be.Err
}

// IsBindError tests if err is or wraps a *BindError
func IsBindError(err error) bool {
	var be *BindError
	return errors.As(err, &be)
}
