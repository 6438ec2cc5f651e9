package buffer

import "testing"

func TestWriteAndString(t *testing.T) {
	var b Buffer
	b.WriteString("hello")
	b.WriteByte(' ')
	b.Write([]byte("world"))

	if got := b.String(); got != "hello world" {
		t.Fatalf("String() = %q, want %q", got, "hello world")
	}
	if b.Len() != len("hello world") {
		t.Fatalf("Len() = %d, want %d", b.Len(), len("hello world"))
	}
}

func TestGrowthIsPowerOfTwo(t *testing.T) {
	var b Buffer
	b.WriteString("0123456789abcdef0") // 17 bytes, forces growth past 16

	if cap(b.Bytes()) != 32 {
		t.Fatalf("cap = %d, want 32", cap(b.Bytes()))
	}
}

func TestReset(t *testing.T) {
	var b Buffer
	b.WriteString("data")
	b.Reset()

	if b.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", b.Len())
	}
	b.WriteString("more")
	if b.String() != "more" {
		t.Fatalf("String() after Reset+Write = %q, want %q", b.String(), "more")
	}
}
