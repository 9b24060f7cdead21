package pattern

import (
	"errors"
	"strconv"
)

var errNotPositive = errors.New("value must be greater than 0")

// ValidatePattern checks that p is non-empty and made only of alphabet
// characters. The first offending character is returned in an
// *InvalidCharacterError.
func ValidatePattern(a Alphabet, p string) error {
	if p == "" {
		return ErrEmptyPattern
	}
	for _, c := range p {
		if !a.Contains(c) {
			return &InvalidCharacterError{Char: c}
		}
	}
	return nil
}

// ParseLengths converts every token into an integer greater than 0.
// The batch is all-or-nothing: the first invalid token stops parsing and no
// lengths are returned. Integers above MaxLength are rejected with an
// *InvalidLengthError.
func ParseLengths(tokens []string) ([]int, error) {
	lengths := make([]int, 0, len(tokens))
	for _, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, &InvalidNumberError{Token: token, Err: err}
		}
		if n < 1 {
			return nil, &InvalidNumberError{Token: token, Err: errNotPositive}
		}
		if n > MaxLength {
			return nil, &InvalidLengthError{Length: n}
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}
