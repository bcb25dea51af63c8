package tlv_test

import (
	"errors"
	"testing"

	"github.com/usnistgov/pivcheck/piv/tlv"
)

func TestDecodeTag(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		input       string
		err         error
		n           int
		class       tlv.Class
		constructed bool
		number      uint64
		uint        uint64
	}{
		{input: "", err: tlv.ErrIncomplete},
		{input: "1F", err: tlv.ErrIncomplete},
		{input: "5F C1", err: tlv.ErrIncomplete},
		{input: "1F 81818181 81818181 81 01", err: tlv.ErrTagTooLong},
		{input: "1F 81818181 81818181 81818181", err: tlv.ErrTagTooLong},
		{input: "01", n: 1, class: tlv.UniversalClass, number: 0x01, uint: 0x01},
		{input: "53 FF", n: 1, class: tlv.ApplicationClass, number: 0x13, uint: 0x53},
		{input: "7E", n: 1, class: tlv.ApplicationClass, constructed: true, number: 0x1E, uint: 0x7E},
		{input: "BC", n: 1, class: tlv.ContextSpecificClass, constructed: true, number: 0x1C, uint: 0xBC},
		{input: "FE", n: 1, class: tlv.PrivateClass, constructed: true, number: 0x1E, uint: 0xFE},
		{input: "5F2F 02", n: 2, class: tlv.ApplicationClass, number: 0x2F, uint: 0x5F2F},
		{input: "7F61", n: 2, class: tlv.ApplicationClass, constructed: true, number: 0x61, uint: 0x7F61},
		{input: "5FC102", n: 3, class: tlv.ApplicationClass, number: 0x41<<7 | 0x02, uint: 0x5FC102},
		{input: "1F 81818181 81818181 01", n: 10, number: 0x0102040810204081},
	}
	for _, tt := range tests {
		input := bytesFromHex(tt.input)
		tag, n, e := tlv.DecodeTag(input, 0)
		if tt.err != nil {
			assert.ErrorIs(e, tt.err, tt.input)
			var de *tlv.DecodeError
			if assert.True(errors.As(e, &de), tt.input) {
				assert.Equal(0, de.Offset, tt.input)
			}
			continue
		}

		if !assert.NoError(e, tt.input) {
			continue
		}
		assert.Equal(tt.n, n, tt.input)
		assert.Equal(tt.n, tag.Len(), tt.input)
		assert.Equal(input[:tt.n], tag.Bytes(), tt.input)
		assert.Equal(tt.class, tag.Class(), tt.input)
		assert.Equal(tt.constructed, tag.Constructed(), tt.input)
		assert.Equal(tt.number, tag.Number(), tt.input)
		if tt.n <= 8 {
			assert.Equal(tt.uint, tag.Uint(), tt.input)
		}
	}
}

func TestDecodeTagOffset(t *testing.T) {
	assert, _ := makeAR(t)

	input := bytesFromHex("01 02 5FC102 03")
	tag, n, e := tlv.DecodeTag(input, 2)
	assert.NoError(e)
	assert.Equal(3, n)
	assert.Equal("5FC102", tag.String())

	_, _, e = tlv.DecodeTag(input, len(input))
	assert.ErrorIs(e, tlv.ErrIncomplete)
	_, _, e = tlv.DecodeTag(input, -1)
	assert.ErrorIs(e, tlv.ErrIncomplete)
}

func TestTagEquality(t *testing.T) {
	assert, _ := makeAR(t)

	a, _, e := tlv.DecodeTag(bytesFromHex("5FC102 00"), 0)
	assert.NoError(e)
	b, _, e := tlv.DecodeTag(bytesFromHex("AA 5FC102"), 1)
	assert.NoError(e)
	assert.Equal(a, b)
	assert.True(a == b)
	assert.Equal(tlv.MakeTag(0x5F, 0xC1, 0x02), a)

	m := map[tlv.Tag]int{a: 1}
	assert.Equal(1, m[b])

	// same tag number, different class
	c := tlv.MakeTag(0x9F, 0xC1, 0x02)
	assert.Equal(a.Number(), c.Number())
	assert.NotEqual(a, c)
	_, found := m[c]
	assert.False(found)

	// same number, different constructed bit
	assert.NotEqual(tlv.MakeTag(0x10), tlv.MakeTag(0x30))
}

func TestTagText(t *testing.T) {
	assert, require := makeAR(t)

	tag, e := tlv.TagFromHex("5f c1 02")
	require.NoError(e)
	assert.Equal(tlv.MakeTag(0x5F, 0xC1, 0x02), tag)

	tag, e = tlv.TagFromHex("0x7F61")
	require.NoError(e)
	assert.Equal(tlv.MakeTag(0x7F, 0x61), tag)

	_, e = tlv.TagFromHex("5FC1")
	assert.ErrorIs(e, tlv.ErrIncomplete)
	_, e = tlv.TagFromHex("3030")
	assert.ErrorIs(e, tlv.ErrTail)
	_, e = tlv.TagFromHex("ZZ")
	assert.Error(e)

	text, e := tag.MarshalText()
	assert.NoError(e)
	assert.Equal("7F61", string(text))

	var decoded tlv.Tag
	assert.NoError(decoded.UnmarshalText([]byte("5FC107")))
	assert.EqualValues(0x5FC107, decoded.Uint())

	var zero tlv.Tag
	assert.True(zero.IsZero())
	assert.False(zero.Constructed())
	assert.Equal("", zero.String())

	assert.Panics(func() { tlv.MakeTag() })
	assert.Panics(func() { tlv.MakeTag(0x5F) })
	assert.Panics(func() { tlv.MakeTag(0x01, 0x02) })
}

func TestClassString(t *testing.T) {
	assert, _ := makeAR(t)
	assert.Equal("universal", tlv.UniversalClass.String())
	assert.Equal("application", tlv.ApplicationClass.String())
	assert.Equal("context-specific", tlv.ContextSpecificClass.String())
	assert.Equal("private", tlv.PrivateClass.String())
	assert.Equal("Class(01)", tlv.Class(0x01).String())
}
