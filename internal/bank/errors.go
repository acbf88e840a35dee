package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion means the bank's version is not a v1 semantic version.
	ErrUnsupportedVersion = errors.New("unsupported bank version")
	// ErrUnknownFormat means the file extension is neither JSON nor YAML.
	ErrUnknownFormat = errors.New("unknown bank format")
	// ErrNoCorrectOption means a question has no option marked correct.
	ErrNoCorrectOption = errors.New("question has no correct option")
)

// ErrInvalidBank wraps any failure to read or validate a bank.
type ErrInvalidBank struct {
	Path string
	Err  error
}

func (e *ErrInvalidBank) Error() string {
	return fmt.Sprintf("invalid question bank %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidBank) Unwrap() error { return e.Err }
