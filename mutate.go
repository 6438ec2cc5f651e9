package clux

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyParented is returned when a push targets a node that
	// already has a parent; ownership of a subtree may only be
	// transferred by first popping it loose.
	ErrAlreadyParented = errors.New("clux: node already has a parent")

	// ErrNotIterable is returned when a push or pop targets a node that
	// is not an Object or Array.
	ErrNotIterable = errors.New("clux: node is not an object or array")

	// ErrKeyMismatch is returned when a child's key presence disagrees
	// with its intended parent's tag: an Object's children MUST carry a
	// key, an Array's children MUST NOT.
	ErrKeyMismatch = errors.New("clux: child key presence does not match parent kind")

	// ErrIndexOutOfRange is returned by indexed push/pop operations.
	ErrIndexOutOfRange = errors.New("clux: index out of range")
)

// SetKey assigns child's object key. Call before pushing child into an
// Object.
func SetKey(n *Node, key string) {
	n.key = key
	n.hasKey = true
}

// ClearKey removes child's object key. Call before pushing child into
// an Array.
func ClearKey(n *Node) {
	n.key = ""
	n.hasKey = false
}

// notPushable mirrors the original library's not_pushable check: a
// child is rejected if its key presence disagrees with the parent's
// kind (Object children MUST have a key, Array children MUST NOT).
func notPushable(parent, child *Node) bool {
	return (parent.tag == Object) != child.hasKey
}

func checkPush(parent, child *Node) error {
	if child.parent != nil {
		return ErrAlreadyParented
	}
	if !parent.IsIterable() {
		return ErrNotIterable
	}
	if notPushable(parent, child) {
		return ErrKeyMismatch
	}
	return nil
}

// PushBack appends child as parent's last child.
func PushBack(parent, child *Node) error {
	if err := checkPush(parent, child); err != nil {
		return err
	}
	child.parent = parent
	parent.children = append(parent.children, child)
	return nil
}

// PushFront prepends child as parent's first child.
func PushFront(parent, child *Node) error {
	return PushAt(parent, 0, child)
}

// PushAt inserts child at the given index among parent's children,
// shifting subsequent children right. index may equal len(children) to
// append.
func PushAt(parent *Node, index int, child *Node) error {
	if err := checkPush(parent, child); err != nil {
		return err
	}
	if index < 0 || index > len(parent.children) {
		return ErrIndexOutOfRange
	}
	child.parent = parent
	parent.children = append(parent.children, nil)
	copy(parent.children[index+1:], parent.children[index:])
	parent.children[index] = child
	return nil
}

// PushBefore inserts child immediately before sibling, within
// sibling's parent.
func PushBefore(sibling, child *Node) error {
	if sibling.parent == nil {
		return ErrNotIterable
	}
	return PushAt(sibling.parent, sibling.Index(), child)
}

// PushAfter inserts child immediately after sibling, within sibling's
// parent.
func PushAfter(sibling, child *Node) error {
	if sibling.parent == nil {
		return ErrNotIterable
	}
	return PushAt(sibling.parent, sibling.Index()+1, child)
}

// popAt removes and returns the child at index, clearing its parent
// link. The returned node becomes a new root.
func popAt(parent *Node, index int) *Node {
	if index < 0 || index >= len(parent.children) {
		return nil
	}
	child := parent.children[index]
	parent.children = append(parent.children[:index], parent.children[index+1:]...)
	child.parent = nil
	return child
}

// PopFront removes and returns parent's first child, or nil if empty.
func PopFront(parent *Node) *Node {
	return popAt(parent, 0)
}

// PopBack removes and returns parent's last child, or nil if empty.
func PopBack(parent *Node) *Node {
	return popAt(parent, len(parent.children)-1)
}

// PopAt removes and returns parent's child at index, or nil if out of
// range.
func PopAt(parent *Node, index int) *Node {
	return popAt(parent, index)
}

// Pop detaches n from its parent and returns it; it is a no-op
// (returns n unchanged) if n is already a root.
func Pop(n *Node) *Node {
	if n.parent == nil {
		return n
	}
	return popAt(n.parent, n.Index())
}

// Delete detaches n from its parent, discarding it, and returns the
// sibling that was immediately after it (nil if n was last or a root).
// Go's garbage collector reclaims the detached subtree; there is no
// explicit free step as in the original C library's iterative
// json_free.
func Delete(n *Node) *Node {
	if n.parent == nil {
		return nil
	}
	parent := n.parent
	idx := n.Index()
	popAt(parent, idx)
	if idx < len(parent.children) {
		return parent.children[idx]
	}
	return nil
}

// Move detaches child from wherever it currently resides (if anywhere)
// and inserts it into parent's children at index (or appends if index
// is negative or past the end).
func Move(parent *Node, index int, child *Node) error {
	if child.parent != nil {
		Pop(child)
	}
	if index < 0 || index > len(parent.children) {
		index = len(parent.children)
	}
	child.parent = nil
	return PushAt(parent, index, child)
}

// Swap exchanges the positions of a and b, including across different
// parents; each retains its own key (or lack of one).
func Swap(a, b *Node) {
	if a == b {
		return
	}
	ap, ai := a.parent, a.Index()
	bp, bi := b.parent, b.Index()

	if ap != nil && ai >= 0 {
		ap.children[ai] = b
	}
	if bp != nil && bi >= 0 {
		bp.children[bi] = a
	}
	a.parent = bp
	b.parent = ap
}

// setType replaces n's payload and tag in place, clearing any prior
// children (Object/Array) or text (String). Existing parent/key are
// preserved.
func (n *Node) setType(tag Tag) {
	n.tag = tag
	n.text = ""
	n.number = 0
	n.children = nil
}

// SetObject replaces n's payload with an empty Object.
func (n *Node) SetObject() { n.setType(Object) }

// SetArray replaces n's payload with an empty Array.
func (n *Node) SetArray() { n.setType(Array) }

// SetString replaces n's payload with a String.
func (n *Node) SetString(s string) {
	n.setType(String)
	n.text = s
}

// SetFormat replaces n's payload with a String built via fmt.Sprintf.
func (n *Node) SetFormat(format string, args ...any) {
	n.SetString(fmt.Sprintf(format, args...))
}

// SetInteger replaces n's payload with an Integer.
func (n *Node) SetInteger(v float64) {
	n.setType(Integer)
	n.number = v
}

// SetReal replaces n's payload with a Real.
func (n *Node) SetReal(v float64) {
	n.setType(Real)
	n.number = v
}

// SetBoolean replaces n's payload with a Boolean.
func (n *Node) SetBoolean(v bool) {
	n.setType(Boolean)
	if v {
		n.number = 1
	}
}

// SetNull replaces n's payload with Null.
func (n *Node) SetNull() {
	n.setType(Null)
}
