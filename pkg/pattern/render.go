package pattern

import (
	"strings"
)

// MaxLength is the longest output, in characters, a pattern can be expanded to.
const MaxLength = 1 << 20

// Expand repeats p cyclically until it is exactly n characters long.
// Lengths are counted in runes and must be in [1, MaxLength].
func Expand(p string, n int) (string, error) {
	if p == "" {
		return "", ErrEmptyPattern
	}
	if n <= 0 || n > MaxLength {
		return "", &InvalidLengthError{Length: n}
	}

	runes := []rune(p)
	fullCopies := n / len(runes)
	remainder := n % len(runes)

	return strings.Repeat(p, fullCopies) + string(runes[:remainder]), nil
}

// Render expands p to n characters and translates it into a sentence,
// e.g. "Soft, Tough and Soft.".
func Render(a Alphabet, p string, n int) (string, error) {
	expanded, err := Expand(p, n)
	if err != nil {
		return "", err
	}

	words := make([]string, 0, n)
	for _, c := range expanded {
		w, ok := a.Word(c)
		if !ok {
			return "", &InvalidCharacterError{Char: c}
		}
		words = append(words, w)
	}

	return JoinWords(words) + ".", nil
}

// JoinWords joins words as a natural-language list:
//
//	["Soft"]                  => "Soft"
//	["Soft", "Tough"]         => "Soft and Tough"
//	["Soft", "Tough", "Soft"] => "Soft, Tough and Soft"
func JoinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	last := len(words) - 1
	return strings.Join(words[:last], ", ") + " and " + words[last]
}
