package bitstring

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a capacity lies outside [1, MaxCapacity],
	// or when a snapshot declares a size smaller than its count.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidLiteral is returned when a literal is empty, too long, or contains
	// characters other than '0' and '1'.
	ErrInvalidLiteral = errors.New("invalid literal")

	// ErrIndexOutOfRange is returned by indexed reads and writes outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidDigit is returned when an assigned or parsed digit is not 0 or 1.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrInvalidLength is returned when a requested length lies outside [0, Cap()].
	ErrInvalidLength = errors.New("invalid length")

	// ErrLengthMismatch is returned by binary operators on operands of unequal
	// length, and by snapshots whose bits disagree with their count.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidShiftAmount is returned for negative shift amounts.
	ErrInvalidShiftAmount = errors.New("invalid shift amount")

	// ErrMalformedSnapshot is returned when serialized data cannot be parsed into
	// the size/count/bits fields.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// IndexError reports an index outside the visible window.
//
// It matches ErrIndexOutOfRange via errors.Is.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// LengthMismatchError reports a binary operation on operands of unequal length.
//
// It matches ErrLengthMismatch via errors.Is. Right is -1 for a nil operand.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	if e.Right < 0 {
		return fmt.Sprintf("length mismatch: %d vs nil operand", e.Left)
	}
	return fmt.Sprintf("length mismatch: %d vs %d", e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
