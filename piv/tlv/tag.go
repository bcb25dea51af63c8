package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// MaxTagOctets is the maximum size of an encoded tag.
// This limits the scan for the terminating subsequent octet on malformed input.
const MaxTagOctets = 10

// Class is the tag class, stored in the 2 high order bits of the leading octet.
type Class uint8

// Tag classes.
const (
	UniversalClass       Class = 0x00
	ApplicationClass     Class = 0x40
	ContextSpecificClass Class = 0x80
	PrivateClass         Class = 0xC0
)

func (c Class) String() string {
	switch c {
	case UniversalClass:
		return "universal"
	case ApplicationClass:
		return "application"
	case ContextSpecificClass:
		return "context-specific"
	case PrivateClass:
		return "private"
	}
	return fmt.Sprintf("Class(%02X)", uint8(c))
}

const (
	classMask       = 0xC0
	constructedBit  = 0x20
	numberMask      = 0x1F
	subsequentBit   = 0x80
	subsequentValue = 0x7F
)

// Tag is a BER tag in its encoded form.
// Two tags are equal if and only if their encodings are identical.
// Tag is comparable and can be used as a map key.
// The zero Tag is invalid.
type Tag struct {
	raw string
}

// ParseTag decodes a tag that occupies the whole input.
func ParseTag(wire []byte) (tag Tag, e error) {
	tag, n, e := DecodeTag(wire, 0)
	if e != nil {
		return Tag{}, e
	}
	if n != len(wire) {
		return Tag{}, decodeError(n, ErrTail)
	}
	return tag, nil
}

// TagFromHex decodes a tag written in hexadecimal, such as "5FC102".
// Whitespace is ignored.
func TagFromHex(s string) (Tag, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	wire, e := hex.DecodeString(s)
	if e != nil {
		return Tag{}, e
	}
	return ParseTag(wire)
}

// MakeTag constructs a tag from its encoding.
// It panics if the encoding is not exactly one valid tag; use it for static tables only.
func MakeTag(wire ...byte) Tag {
	tag, e := ParseTag(wire)
	if e != nil {
		panic(fmt.Errorf("tlv.MakeTag(%X): %w", wire, e))
	}
	return tag
}

// DecodeTag decodes a tag at the given offset.
// Returns the tag and the number of octets consumed.
func DecodeTag(buf []byte, offset int) (tag Tag, n int, e error) {
	if offset < 0 || offset >= len(buf) {
		return Tag{}, 0, decodeError(offset, ErrIncomplete)
	}

	if buf[offset]&numberMask != numberMask {
		return Tag{raw: string(buf[offset : offset+1])}, 1, nil
	}

	// Subsequent octets have bit 8 set, except the last one.
	for n = 1; ; n++ {
		if n >= MaxTagOctets {
			return Tag{}, 0, decodeError(offset, ErrTagTooLong)
		}
		pos := offset + n
		if pos >= len(buf) {
			return Tag{}, 0, decodeError(offset, ErrIncomplete)
		}
		if buf[pos]&subsequentBit == 0 {
			n++
			break
		}
	}
	return Tag{raw: string(buf[offset : offset+n])}, n, nil
}

// IsZero returns true if this is the zero Tag.
func (t Tag) IsZero() bool {
	return len(t.raw) == 0
}

// Len returns encoded size.
func (t Tag) Len() int {
	return len(t.raw)
}

// Bytes returns a copy of the encoding.
func (t Tag) Bytes() []byte {
	return []byte(t.raw)
}

// Class returns tag class.
func (t Tag) Class() Class {
	if t.IsZero() {
		return UniversalClass
	}
	return Class(t.raw[0] & classMask)
}

// Constructed returns true if the constructed bit is set in the leading octet.
func (t Tag) Constructed() bool {
	return !t.IsZero() && t.raw[0]&constructedBit != 0
}

// Number returns tag number within its class.
func (t Tag) Number() (n uint64) {
	if t.IsZero() {
		return 0
	}
	if len(t.raw) == 1 {
		return uint64(t.raw[0] & numberMask)
	}
	for i := 1; i < len(t.raw); i++ {
		n = n<<7 | uint64(t.raw[i]&subsequentValue)
	}
	return n
}

// Uint returns the encoding interpreted as a big-endian integer, such as 0x5FC102.
// This is how tags are written in SP 800-73-4 tables.
// Tags longer than 8 octets are truncated to their last 8 octets.
func (t Tag) Uint() (v uint64) {
	for i := 0; i < len(t.raw); i++ {
		v = v<<8 | uint64(t.raw[i])
	}
	return v
}

// String returns the encoding in upper case hexadecimal.
func (t Tag) String() string {
	return strings.ToUpper(hex.EncodeToString([]byte(t.raw)))
}

// MarshalText implements encoding.TextMarshaler interface.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler interface.
func (t *Tag) UnmarshalText(text []byte) (e error) {
	*t, e = TagFromHex(string(text))
	return e
}
