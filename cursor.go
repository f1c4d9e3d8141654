package curry

import (
	"strings"
	"unicode/utf8"
)

// cursor is a position in normalized source text. The grammar shares one
// cursor for a whole compile, including parenthesized subexpressions.
type cursor struct {
	// text is the source with spaces removed.
	text string
	// cols maps each byte of text, plus the end, to its 1-based column in the
	// source as the caller wrote it.
	cols []int
	pos  int
	end  int
}

// normalize removes spaces from src and creates a cursor over the remainder.
func normalize(src string) *cursor {
	var b strings.Builder
	b.Grow(len(src))
	cols := make([]int, 0, len(src)+1)
	for i := 0; i < len(src); i++ {
		if src[i] == ' ' {
			continue
		}
		b.WriteByte(src[i])
		cols = append(cols, i+1)
	}
	cols = append(cols, len(src)+1)
	text := b.String()
	return &cursor{text: text, cols: cols, end: len(text)}
}

// eof reports whether the cursor has consumed all of its range.
func (c *cursor) eof() bool {
	return c.pos == c.end
}

// head returns the current character. Panics at EOF; callers must check eof
// first.
func (c *cursor) head() byte {
	return c.at(0)
}

// at returns the character off bytes past the current one. Panics if that
// is outside the cursor's range.
func (c *cursor) at(off int) byte {
	if off < 0 || c.pos+off >= c.end {
		panic("curry: cursor read past end of input")
	}
	return c.text[c.pos+off]
}

// prefix returns up to n bytes starting at the current position, folded to
// lower case. It does not consume anything.
func (c *cursor) prefix(n int) string {
	if r := c.end - c.pos; r < n {
		n = r
	}
	return strings.ToLower(c.text[c.pos : c.pos+n])
}

// advance consumes n bytes. If fewer than n remain, the cursor does not move
// and the result is false.
func (c *cursor) advance(n int) bool {
	if n < 0 || c.pos+n > c.end {
		return false
	}
	c.pos += n
	return true
}

// col is the column in the original source of the current position.
func (c *cursor) col() int {
	return c.cols[c.pos]
}

// found describes the current character for error messages. The result is
// empty at EOF.
func (c *cursor) found() string {
	if c.eof() {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.pos:c.end])
	return string(r)
}
