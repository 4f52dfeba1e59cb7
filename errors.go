package sexpr

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnexpectedEOF indicates the parser ran out of input where an
	// expression was required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrMalformedNumber indicates a number-leading token that is neither a
	// valid integer nor a valid float.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrEmptySymbol indicates a symbol position that yields zero characters
	// before a stop character.
	ErrEmptySymbol = errors.New("empty symbol")

	// ErrUnterminatedString indicates an opening quote with no closing quote
	// before end of input.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrUnclosedList indicates input ended while a list was still open.
	ErrUnclosedList = errors.New("unclosed list")

	// ErrTooDeep indicates list nesting beyond ParseOptions.MaxDepth.
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

// ParseError describes a parse failure. Err is one of the package sentinel
// errors and matches with errors.Is; Offset is the byte offset into the
// source where the failure starts; Token is the offending slice when one
// was scanned.
type ParseError struct {
	Err    error  // Error kind
	Token  string // Offending slice, may be empty
	Offset int    // Byte offset into the source
}

// Error formats the parse error.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
	}

	return fmt.Sprintf("%s at offset %d: %s", e.Err, e.Offset, strconv.Quote(e.Token))
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}
