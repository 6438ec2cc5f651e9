package clux

import "fmt"

// NewObject creates an empty, unparented Object node.
func NewObject() *Node {
	return &Node{tag: Object}
}

// NewArray creates an empty, unparented Array node.
func NewArray() *Node {
	return &Node{tag: Array}
}

// NewString creates an unparented String node holding s.
func NewString(s string) *Node {
	return &Node{tag: String, text: s}
}

// NewFormat creates an unparented String node via fmt.Sprintf, the
// builder-sugar equivalent of the original library's json_new_format.
func NewFormat(format string, args ...any) *Node {
	return NewString(fmt.Sprintf(format, args...))
}

// NewInteger creates an unparented Integer node. The value is stored as
// a double per the Integer/Real representational hint.
func NewInteger(v float64) *Node {
	return &Node{tag: Integer, number: v}
}

// NewReal creates an unparented Real node.
func NewReal(v float64) *Node {
	return &Node{tag: Real, number: v}
}

// NewBoolean creates an unparented Boolean node.
func NewBoolean(v bool) *Node {
	n := &Node{tag: Boolean}
	if v {
		n.number = 1
	}
	return n
}

// NewNull creates an unparented Null node.
func NewNull() *Node {
	return &Node{tag: Null}
}
