package curry

import "strconv"

// ParseError is an error indicating that an expression could not be compiled.
// It implements InputError.
type ParseError struct {
	// Col is the 1-based byte position in the source of the character that
	// caused the error, or one past the end of the source if the error is a
	// premature end of input.
	Col int
	// Found is the character at Col, or the empty string at end of input.
	Found string
	// Want describes what the parser expected at Col.
	Want string
}

func (err *ParseError) Error() string {
	if err.Found == "" {
		return errpos(err.Col, "unexpected end of input, want "+err.Want)
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Found)+", want "+err.Want)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// errorf creates a ParseError at the cursor's current position.
func (c *cursor) errorf(want string) *ParseError {
	return &ParseError{Col: c.col(), Found: c.found(), Want: want}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of bytes up to and
	// including the character that caused it.
	Pos() int
}

var _ InputError = (*ParseError)(nil)
