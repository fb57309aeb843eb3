package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller mistakes the delivery layer reports as 400.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
