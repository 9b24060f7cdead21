package pattern

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when a zero-length pattern is validated or rendered.
var ErrEmptyPattern = errors.New("empty pattern")

// InvalidCharacterError represents a pattern character outside the alphabet
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%c is not one of the allowed letters", e.Char)
}

// InvalidNumberError represents a token that is not an integer greater than 0
type InvalidNumberError struct {
	Token string
	Err   error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s is not valid number (should be integer greater than 0)", e.Token)
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

// InvalidLengthError represents a target length outside [1, MaxLength]
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("Improper output length (%d) provided", e.Length)
}
