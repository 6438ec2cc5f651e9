// Package buffer implements a growable byte sequence with explicit
// power-of-two capacity growth, used by the serializer to avoid
// per-append reallocation.
package buffer

// Buffer is a growable byte sequence. The zero value is ready to use.
type Buffer struct {
	text []byte
}

// minCapacity is the smallest capacity a non-empty Buffer grows to.
const minCapacity = 16

func nextPow2(n int) int {
	if n <= 0 {
		return minCapacity
	}
	p := minCapacity
	for p < n {
		p <<= 1
	}
	return p
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage and is invalidated by the next mutating call.
func (b *Buffer) Bytes() []byte {
	return b.text
}

// String returns a copy of the buffer's contents as a string.
func (b *Buffer) String() string {
	return string(b.text)
}

func (b *Buffer) grow(extra int) {
	need := len(b.text) + extra
	if need <= cap(b.text) {
		return
	}
	newCap := nextPow2(need)
	grown := make([]byte, len(b.text), newCap)
	copy(grown, b.text)
	b.text = grown
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	b.grow(1)
	b.text = append(b.text, c)
}

// Write appends s, growing storage to the next power of two as needed.
func (b *Buffer) Write(s []byte) {
	b.grow(len(s))
	b.text = append(b.text, s...)
}

// WriteString appends s, growing storage to the next power of two as
// needed.
func (b *Buffer) WriteString(s string) {
	b.grow(len(s))
	b.text = append(b.text, s...)
}

// Reset empties the buffer without releasing its storage.
func (b *Buffer) Reset() {
	b.text = b.text[:0]
}
