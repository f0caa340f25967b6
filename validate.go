package inline

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrClosingViolation reports a text group that was opened but never closed.
	ErrClosingViolation = errors.New("unterminated text group")
)

// ClosingViolationError carries the position of the unterminated text group.
type ClosingViolationError struct {
	Position Position
}

func (e *ClosingViolationError) Error() string {
	return fmt.Sprintf("%v at %d:%d", ErrClosingViolation, e.Position.Line, e.Position.Column)
}

func (e *ClosingViolationError) Unwrap() error {
	return ErrClosingViolation
}

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}
