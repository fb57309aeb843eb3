package repository

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
	ErrSetupNotFound = errors.New("trading setup not found")
)

// validID reports whether id can be compared against a uuid column without a driver error.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
