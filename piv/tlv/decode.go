package tlv

// Decoding limits.
const (
	// MaxElements is the maximum number of top-level elements in one Parse.
	MaxElements = 100
	// MaxDepth is the maximum nesting level of constructed elements.
	MaxDepth = 16
)

// Parser decodes BER-TLV input.
// The zero Parser descends into every element whose tag has the constructed bit.
type Parser struct {
	// Leaf, if not nil, selects tags whose value is kept verbatim even if the constructed bit is set.
	// PIV data objects use such tags (e.g. '30' FASC-N, '70' certificate) for opaque values.
	Leaf func(tag Tag) bool
}

// Parse decodes a sequence of top-level elements.
// Constructed elements are decoded recursively.
// Empty input yields an empty forest.
func (p Parser) Parse(buf []byte) (Forest, error) {
	return p.ParseAt(buf, 0, len(buf))
}

// ParseAt decodes a sequence of top-level elements in buf[offset:offset+length].
// Error offsets are relative to buf.
func (p Parser) ParseAt(buf []byte, offset, length int) (forest Forest, e error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return nil, decodeError(offset, ErrIncomplete)
	}

	end := offset + length
	region := buf[:end]
	forest = Forest{}
	for pos, i := offset, 0; pos < end; i++ {
		if i == MaxElements {
			return nil, decodeError(pos, ErrTooManyElements)
		}
		node, next, e := p.decodeOne(region, pos, 0)
		if e != nil {
			return nil, e
		}
		forest = append(forest, node)
		pos = next
	}
	return forest, nil
}

// ParseConstructed decodes a single element and treats its value as a sequence of sub-elements,
// regardless of the constructed bit in its tag.
// This suits wrappers such as the '53' data object template.
// Input after the first element is ignored.
func (p Parser) ParseConstructed(buf []byte) (node Node, e error) {
	if node, _, e = p.decodeOne(buf, 0, 0); e != nil {
		return Node{}, e
	}
	if !node.IsConstructed() {
		valueEnd := len(node.Wire)
		valueStart := valueEnd - len(node.Value)
		if node.Children, e = p.decodeChildren(buf[:valueEnd], valueStart, 1); e != nil {
			return Node{}, e
		}
	}
	return node, nil
}

func (p Parser) descend(tag Tag) bool {
	return tag.Constructed() && (p.Leaf == nil || !p.Leaf(tag))
}

// decodeOne decodes one element at offset.
// buf must end where the enclosing region ends.
// Returns the element and the offset after it.
func (p Parser) decodeOne(buf []byte, offset int, depth int) (node Node, next int, e error) {
	tag, tagLen, e := DecodeTag(buf, offset)
	if e != nil {
		return Node{}, 0, e
	}
	length, lengthLen, e := DecodeLength(buf, offset+tagLen)
	if e != nil {
		return Node{}, 0, e
	}

	valueStart := offset + tagLen + lengthLen
	valueEnd := valueStart + length
	if valueEnd > len(buf) {
		return Node{}, 0, decodeError(offset, ErrIncomplete)
	}

	node.Tag = tag
	node.Value = buf[valueStart:valueEnd:valueEnd]
	node.Wire = buf[offset:valueEnd:valueEnd]
	if p.descend(tag) {
		if depth >= MaxDepth {
			return Node{}, 0, decodeError(offset, ErrTooDeep)
		}
		if node.Children, e = p.decodeChildren(buf[:valueEnd], valueStart, depth+1); e != nil {
			return Node{}, 0, e
		}
	}
	return node, valueEnd, nil
}

// decodeChildren decodes sub-elements from offset to the end of buf, which is the end of the value region.
// A child that ends exactly at the region end terminates the loop without an extra zero-length element.
func (p Parser) decodeChildren(buf []byte, offset int, depth int) (children Forest, e error) {
	children = Forest{}
	for pos := offset; pos < len(buf); {
		child, next, e := p.decodeOne(buf, pos, depth)
		if e != nil {
			return nil, e
		}
		children = append(children, child)
		pos = next
	}
	return children, nil
}

// Parse decodes a sequence of top-level elements with the zero Parser.
func Parse(buf []byte) (Forest, error) {
	return Parser{}.Parse(buf)
}

// ParseAt decodes a sequence of top-level elements in buf[offset:offset+length] with the zero Parser.
func ParseAt(buf []byte, offset, length int) (Forest, error) {
	return Parser{}.ParseAt(buf, offset, length)
}

// ParseConstructed decodes a single element and its sub-elements with the zero Parser.
func ParseConstructed(buf []byte) (Node, error) {
	return Parser{}.ParseConstructed(buf)
}
