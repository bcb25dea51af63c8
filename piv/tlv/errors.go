package tlv

import (
	"errors"
	"fmt"
)

// Error conditions.
var (
	ErrIncomplete      = errors.New("incomplete input")
	ErrTagTooLong      = errors.New("tag exceeds 10 octets")
	ErrLength          = errors.New("unsupported length encoding")
	ErrTooManyElements = errors.New("too many top-level elements")
	ErrTooDeep         = errors.New("elements nested too deep")
	ErrTail            = errors.New("junk after end of tag")
	ErrRange           = errors.New("out of range")
)

// DecodeError reports a malformed input buffer.
type DecodeError struct {
	// Offset is the position in the input buffer of the element that could not be decoded.
	Offset int
	// Err is one of the error conditions above.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("BER-TLV decode error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error condition.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(offset int, e error) error {
	return &DecodeError{Offset: offset, Err: e}
}
