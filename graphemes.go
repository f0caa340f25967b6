package inline

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// trigger is the scanner's classification of a single grapheme cluster.
type trigger uint8

const (
	triggerPlain trigger = iota
	triggerSpace
	triggerNewLine
	triggerEscape
	triggerAsterisk
	triggerBacktick
	triggerGroupOpen
	triggerGroupClose
)

const (
	escapeGrapheme     = "\\"
	asteriskGrapheme   = "*"
	backtickGrapheme   = "`"
	groupOpenGrapheme  = "["
	groupCloseGrapheme = "]"
)

func classify(g string) trigger {
	switch g {
	case asteriskGrapheme:
		return triggerAsterisk
	case escapeGrapheme:
		return triggerEscape
	case backtickGrapheme:
		return triggerBacktick
	case groupOpenGrapheme:
		return triggerGroupOpen
	case groupCloseGrapheme:
		return triggerGroupClose
	case "\n", "\r\n", "\r":
		return triggerNewLine
	}
	r, size := utf8.DecodeRuneInString(g)
	if size == len(g) && unicode.IsSpace(r) {
		return triggerSpace
	}
	return triggerPlain
}

// isBoundary reports whether g ends an emphasis run the way whitespace does.
func isBoundary(g string) bool {
	switch classify(g) {
	case triggerSpace, triggerNewLine:
		return true
	}
	return false
}

// cursor walks the grapheme clusters of the input with one grapheme of lookahead.
type cursor struct {
	pull   func() (string, bool)
	peeked string
	ahead  bool
	done   bool
}

func newCursor(input string) *cursor {
	iter := graphemes.FromString(input)
	return &cursor{pull: func() (string, bool) {
		if !iter.Next() {
			return "", false
		}
		return iter.Value(), true
	}}
}

func (c *cursor) next() (string, bool) {
	if c.ahead {
		c.ahead = false
		return c.peeked, true
	}
	if c.done {
		return "", false
	}
	g, ok := c.pull()
	if !ok {
		c.done = true
	}
	return g, ok
}

// peek returns the next grapheme without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.ahead {
		return c.peeked, true
	}
	g, ok := c.next()
	if !ok {
		return "", false
	}
	c.peeked = g
	c.ahead = true
	return g, true
}
