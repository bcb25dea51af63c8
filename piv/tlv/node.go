package tlv

import "fmt"

// Node represents a decoded TLV element.
//
// A primitive node has nil Children.
// A constructed node has non-nil Children, and the concatenation of their Wire equals Value.
type Node struct {
	// Tag is the element tag.
	Tag Tag
	// Value is the verbatim value field.
	Value []byte
	// Wire is the verbatim encoding of the whole element.
	Wire []byte
	// Children are the decoded sub-elements, in order of appearance.
	Children Forest
}

// IsConstructed returns true if children have been decoded.
func (n Node) IsConstructed() bool {
	return n.Children != nil
}

// Length returns value length.
func (n Node) Length() int {
	return len(n.Value)
}

// Size returns encoded size.
func (n Node) Size() int {
	return len(n.Wire)
}

func (n Node) String() string {
	if n.IsConstructed() {
		return fmt.Sprintf("%v(%d){%d}", n.Tag, n.Length(), len(n.Children))
	}
	return fmt.Sprintf("%v(%d)", n.Tag, n.Length())
}

// Forest is an ordered sequence of TLV elements.
type Forest []Node

// Find returns the first element with the given tag.
func (f Forest) Find(tag Tag) (node Node, ok bool) {
	for _, node = range f {
		if node.Tag == tag {
			return node, true
		}
	}
	return Node{}, false
}

// FindAll returns all elements with the given tag.
func (f Forest) FindAll(tag Tag) (list []Node) {
	for _, node := range f {
		if node.Tag == tag {
			list = append(list, node)
		}
	}
	return list
}

// Walk visits every element in depth-first pre-order.
// Top-level elements have depth 0.
func (f Forest) Walk(visit func(node Node, depth int)) {
	f.walk(visit, 0)
}

func (f Forest) walk(visit func(node Node, depth int), depth int) {
	for _, node := range f {
		visit(node, depth)
		node.Children.walk(visit, depth+1)
	}
}

// Encode returns the concatenated encoding of all elements.
func (f Forest) Encode() (wire []byte) {
	for _, node := range f {
		wire = append(wire, node.Wire...)
	}
	return wire
}
