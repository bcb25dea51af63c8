package tlv

// Encode encodes an element from a tag and value fragments.
// The value is the concatenation of all fragments.
func Encode(tag Tag, value ...[]byte) (wire []byte, e error) {
	if tag.IsZero() {
		return nil, ErrRange
	}
	length := 0
	for _, part := range value {
		length += len(part)
	}

	wire = append(wire, tag.raw...)
	if wire, e = AppendLength(wire, length); e != nil {
		return nil, e
	}
	for _, part := range value {
		wire = append(wire, part...)
	}
	return wire, nil
}

// MustEncode is like Encode but panics on error.
func MustEncode(tag Tag, value ...[]byte) []byte {
	wire, e := Encode(tag, value...)
	if e != nil {
		panic(e)
	}
	return wire
}
