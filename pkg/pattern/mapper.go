package pattern

import (
	"errors"

	"github.com/sonemaro/patterntext/pkg/report"
)

const (
	msgEmptyPattern = "An empty pattern has been provided"
	msgEmptyRender  = "An empty string has been passed to the function"
)

// Mapper wraps the pattern functions for command line use. Failures are
// reported through the injected Reporter and turned into empty results,
// so no error ever reaches the caller.
type Mapper struct {
	alphabet Alphabet
	reporter report.Reporter
}

// NewMapper creates a Mapper over the given alphabet.
func NewMapper(alphabet Alphabet, reporter report.Reporter) *Mapper {
	return &Mapper{
		alphabet: alphabet,
		reporter: reporter,
	}
}

// ValidateChars reports whether p is a non-empty string of alphabet characters.
func (m *Mapper) ValidateChars(p string) bool {
	err := ValidatePattern(m.alphabet, p)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrEmptyPattern):
		m.reporter.Report(report.Error(msgEmptyPattern))
	default:
		m.reporter.Report(report.Error(err.Error()))
	}
	return false
}

// ValidateInts parses tokens as integers greater than 0. On the first invalid
// token it reports the token and returns an empty slice.
func (m *Mapper) ValidateInts(tokens []string) []int {
	lengths, err := ParseLengths(tokens)
	if err != nil {
		m.reporter.Report(report.Error(err.Error()))
		return []int{}
	}
	return lengths
}

// Render returns the sentence for p expanded to n characters, or "" when
// the input cannot be rendered. Failures are only written to the log.
func (m *Mapper) Render(p string, n int) string {
	text, err := Render(m.alphabet, p, n)
	if err == nil {
		return text
	}

	if errors.Is(err, ErrEmptyPattern) {
		m.reporter.Report(report.ErrorLogOnly(msgEmptyRender))
	} else {
		m.reporter.Report(report.ErrorLogOnly(err.Error()))
	}
	return ""
}
