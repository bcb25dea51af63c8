package tlv

// Length encoding limits.
const (
	// MaxLengthOctets is the maximum number of subsequent octets in a long form length.
	MaxLengthOctets = 3
	// MaxLength is the maximum value length.
	MaxLength = 1<<(8*MaxLengthOctets) - 1
)

const longFormBit = 0x80

// DecodeLength decodes a definite length at the given offset.
// Returns the value length and the number of octets consumed.
//
// Short form is a single octet with bit 8 clear.
// Long form has bit 8 set and the low 7 bits count the subsequent big-endian octets, at most MaxLengthOctets.
// The indefinite form is not supported.
func DecodeLength(buf []byte, offset int) (length, n int, e error) {
	if offset < 0 || offset >= len(buf) {
		return 0, 0, decodeError(offset, ErrIncomplete)
	}

	first := buf[offset]
	if first&longFormBit == 0 {
		return int(first), 1, nil
	}

	size := int(first &^ longFormBit)
	if size == 0 || size > MaxLengthOctets {
		return 0, 0, decodeError(offset, ErrLength)
	}
	if offset+1+size > len(buf) {
		return 0, 0, decodeError(offset, ErrIncomplete)
	}
	for _, b := range buf[offset+1 : offset+1+size] {
		length = length<<8 | int(b)
	}
	return length, 1 + size, nil
}

// AppendLength appends the minimal encoding of a length.
func AppendLength(b []byte, length int) ([]byte, error) {
	switch {
	case length < 0 || length > MaxLength:
		return nil, ErrRange
	case length < longFormBit:
		return append(b, byte(length)), nil
	case length <= 0xFF:
		return append(b, longFormBit|1, byte(length)), nil
	case length <= 0xFFFF:
		return append(b, longFormBit|2, byte(length>>8), byte(length)), nil
	default:
		return append(b, longFormBit|3, byte(length>>16), byte(length>>8), byte(length)), nil
	}
}
