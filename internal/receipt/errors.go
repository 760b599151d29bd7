package receipt

import "errors"

var (
	// ErrNotFound is returned when no receipt has the requested ID
	ErrNotFound = errors.New("receipt not found")

	// ErrLineDetection is returned when the OCR collaborator fails before any
	// lines reach the interpreter
	ErrLineDetection = errors.New("line detection failed")

	// ErrInvalidInput is returned when a request cannot be interpreted at all
	ErrInvalidInput = errors.New("invalid input")
)
