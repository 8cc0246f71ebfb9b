// Package textio provides sequential text iterators over buffered
// input. Single-threaded by design.
package textio

import (
	"bufio"
	"io"
	"strings"
)

// Words iterates over the words of an input stream, one buffered line
// at a time. A word is a maximal run of runes for which the
// caller-supplied predicate returns true.
//
// Usage follows the reader idiom:
//
//	w := textio.NewWords(r, unicode.IsLetter)
//	for w.Next() {
//	    use(w.Word())
//	}
//	if err := w.Err(); err != nil { ... }
type Words struct {
	lines   *bufio.Scanner
	queue   []string
	current string
	pred    func(rune) bool
}

// NewWords builds a word iterator over input. isWordChar decides
// which runes belong to a word; everything else separates words.
func NewWords(input io.Reader, isWordChar func(rune) bool) *Words {
	return &Words{
		lines: bufio.NewScanner(input),
		pred:  isWordChar,
	}
}

// Next advances to the following word. It returns false at end of
// input or on a read error; check Err to tell the two apart.
func (w *Words) Next() bool {
	for len(w.queue) == 0 {
		if !w.lines.Scan() {
			return false
		}
		w.queue = strings.FieldsFunc(w.lines.Text(), func(r rune) bool {
			return !w.pred(r)
		})
	}
	w.current = w.queue[0]
	w.queue = w.queue[1:]
	return true
}

// Word returns the current word. Valid only after Next reported true.
func (w *Words) Word() string {
	return w.current
}

// Err returns the first read error encountered, if any.
func (w *Words) Err() error {
	return w.lines.Err()
}
