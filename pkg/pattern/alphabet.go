/*
Package pattern turns a short pattern string into a sentence.

A pattern is a string over a fixed alphabet. Rendering repeats the pattern
cyclically up to a target length and translates every character into its
word:

	text, err := pattern.Render(pattern.Default, "STTTS", 7)
	// "Soft, Tough, Tough, Tough, Soft, Soft and Tough."

The package exposes pure functions that return typed errors, and a Mapper
that reports those errors through a report.Reporter and falls back to empty
results instead.
*/
package pattern

import "strings"

// Alphabet is an immutable mapping from pattern characters to display words.
type Alphabet struct {
	letters []rune
	words   map[rune]string
}

// Letter pairs a pattern character with its display word.
type Letter struct {
	Char rune
	Word string
}

// Default is the alphabet used by the command line tool.
var Default = NewAlphabet(
	Letter{Char: 'S', Word: "Soft"},
	Letter{Char: 'T', Word: "Tough"},
)

// NewAlphabet builds an alphabet from the given letters. Letter order is kept
// for display; a repeated character keeps its first word.
func NewAlphabet(letters ...Letter) Alphabet {
	a := Alphabet{
		letters: make([]rune, 0, len(letters)),
		words:   make(map[rune]string, len(letters)),
	}
	for _, l := range letters {
		if _, ok := a.words[l.Char]; ok {
			continue
		}
		a.letters = append(a.letters, l.Char)
		a.words[l.Char] = l.Word
	}
	return a
}

// Word returns the display word for c.
func (a Alphabet) Word(c rune) (string, bool) {
	w, ok := a.words[c]
	return w, ok
}

// Contains reports whether c is part of the alphabet.
func (a Alphabet) Contains(c rune) bool {
	_, ok := a.words[c]
	return ok
}

// Letters returns a copy of the alphabet characters in declaration order.
func (a Alphabet) Letters() []rune {
	out := make([]rune, len(a.letters))
	copy(out, a.letters)
	return out
}

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a.letters)
}

// String lists the alphabet characters separated by commas, e.g. "S,T".
func (a Alphabet) String() string {
	parts := make([]string, len(a.letters))
	for i, c := range a.letters {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
