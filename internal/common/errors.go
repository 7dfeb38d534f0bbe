// Package common defines the sentinel errors shared across
// termvault components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Infrastructure errors.
	ErrIO            = errors.New("i/o failure")
	ErrSerialization = errors.New("serialization failure")
	ErrHash          = errors.New("hash failure")

	// ErrValidation is the parent of every business-rule rejection below.
	ErrValidation = errors.New("validation failure")

	ErrEmptyUsername     = fmt.Errorf("%w: username must not be empty", ErrValidation)
	ErrUsernameTaken     = fmt.Errorf("%w: username already exists", ErrValidation)
	ErrEmptyPassword     = fmt.Errorf("%w: password must not be empty", ErrValidation)
	ErrPasswordMismatch  = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrUnknownUser       = fmt.Errorf("%w: unknown user", ErrValidation)
	ErrInvalidCredential = fmt.Errorf("%w: wrong password", ErrValidation)
)
