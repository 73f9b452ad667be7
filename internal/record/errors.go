package record

import (
	"errors"
	"fmt"
)

// ErrOpen is returned when the training source cannot be opened or read.
var ErrOpen = errors.New("unable to open training source")

// StructuralError reports a line that is missing a numeric or label field.
// Loading stops at such a line.
type StructuralError struct {
	Line int
	Text string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid csv format in line %d: %q", e.Line, e.Text)
}

// ParseError reports a line whose numeric field could not be parsed. The
// line is skipped and loading continues.
type ParseError struct {
	Line  int
	Text  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid argument in line %d: %q, token: %q", e.Line, e.Text, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
