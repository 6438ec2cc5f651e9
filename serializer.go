package clux

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-clux/clux/internal/buffer"
	"github.com/go-clux/clux/internal/ctext"
)

// Encoding selects how the serializer emits non-ASCII/control bytes.
type Encoding int

const (
	// UTF8 passes non-ASCII multibyte sequences through unescaped.
	UTF8 Encoding = iota
	// ASCII re-encodes any non-ASCII byte as a \uXXXX escape.
	ASCII
)

var encoding = UTF8

// GetEncoding returns the process-global serializer encoding mode.
func GetEncoding() Encoding {
	return encoding
}

// SetEncoding sets the process-global serializer encoding mode.
func SetEncoding(e Encoding) {
	encoding = e
}

// Quote returns text wrapped in double quotes with JSON escaping
// applied, using the current encoding mode.
func Quote(text string) string {
	var buf buffer.Buffer
	quoteInto(&buf, text, encoding)
	return buf.String()
}

func quoteInto(buf *buffer.Buffer, text string, mode Encoding) {
	buf.WriteByte('"')
	start := 0
	i := 0
	flush := func(end int) {
		if end > start {
			buf.WriteString(text[start:end])
		}
	}
	for i < len(text) {
		c := text[i]
		if esc := ctext.EncodeEscape(c); esc != 0 {
			flush(i)
			buf.WriteByte('\\')
			buf.WriteByte(esc)
			i++
			start = i
			continue
		}
		if ctext.IsControl(c) || (mode == ASCII && !ctext.IsASCII(c)) {
			flush(i)
			escape, consumed := ctext.EncodeUnicodeEscape([]byte(text[i:]))
			buf.WriteString(escape)
			if consumed < 1 {
				consumed = 1
			}
			i += consumed
			start = i
			continue
		}
		i++
	}
	flush(i)
	buf.WriteByte('"')
}

func isAllDigitsOrMinus(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '-' && !ctext.IsDigit(c) {
			return false
		}
	}
	return true
}

func writeInteger(buf *buffer.Buffer, v float64) {
	buf.WriteString(strconv.FormatFloat(v, 'f', 0, 64))
}

func writeReal(buf *buffer.Buffer, v float64) {
	text := strconv.FormatFloat(v, 'g', 17, 64)
	buf.WriteString(text)
	if isAllDigitsOrMinus(text) {
		buf.WriteString(".0")
	}
}

func printScalar(buf *buffer.Buffer, n *Node) {
	switch n.tag {
	case String:
		quoteInto(buf, n.text, encoding)
	case Integer:
		writeInteger(buf, n.number)
	case Real:
		writeReal(buf, n.number)
	case Boolean:
		if n.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Null:
		buf.WriteString("null")
	}
}

func writeIndentSpaces(buf *buffer.Buffer, depth, indent int) {
	for i := 0; i < depth*indent; i++ {
		buf.WriteByte(' ')
	}
}

func printNode(buf *buffer.Buffer, n *Node, depth, indent int, trailingComma bool) {
	writeIndentSpaces(buf, depth, indent)
	if n.hasKey {
		quoteInto(buf, n.key, encoding)
		if indent == 0 {
			buf.WriteByte(':')
		} else {
			buf.WriteString(": ")
		}
	}
	switch n.tag {
	case Object:
		buf.WriteByte('{')
	case Array:
		buf.WriteByte('[')
	default:
		printScalar(buf, n)
	}
	if len(n.children) == 0 {
		switch n.tag {
		case Object:
			buf.WriteByte('}')
		case Array:
			buf.WriteByte(']')
		}
		if trailingComma {
			buf.WriteByte(',')
		}
	}
	if indent > 0 {
		buf.WriteByte('\n')
	}
}

func printClose(buf *buffer.Buffer, n *Node, depth, indent int, trailingComma bool) {
	if len(n.children) == 0 {
		return
	}
	writeIndentSpaces(buf, depth, indent)
	switch n.tag {
	case Object:
		buf.WriteByte('}')
	case Array:
		buf.WriteByte(']')
	}
	if trailingComma {
		buf.WriteByte(',')
	}
	if indent > 0 {
		buf.WriteByte('\n')
	}
}

func printTree(buf *buffer.Buffer, n *Node, depth, indent int) {
	for i, child := range n.children {
		trailingComma := i+1 < len(n.children)
		printNode(buf, child, depth, indent, trailingComma)
		if len(child.children) > 0 {
			printTree(buf, child, depth+1, indent)
			printClose(buf, child, depth, indent, trailingComma)
		}
	}
}

// serializeLoop wraps node in a synthetic container so the same tree
// printer can serialize a bare value, a bare property ({key: value}),
// or a proper root uniformly, mirroring the original buffer_loop trick.
func serializeLoop(buf *buffer.Buffer, n *Node, indent int) {
	if n.hasKey {
		parent := &Node{tag: Object, children: []*Node{n}}
		grandparent := &Node{tag: Array, children: []*Node{parent}}
		printTree(buf, grandparent, 0, indent)
		return
	}
	parent := &Node{tag: Array, children: []*Node{n}}
	printTree(buf, parent, 0, indent)
}

func clampIndent(indent int) int {
	if indent < 0 {
		return 0
	}
	if indent > 8 {
		return 8
	}
	return indent
}

// Encode serializes node in compact form (no whitespace).
func Encode(n *Node) string {
	var buf buffer.Buffer
	serializeLoop(&buf, n, 0)
	return buf.String()
}

// Serialize serializes node with indent spaces per nesting level
// (clamped to 0-8); indent 0 is equivalent to Encode.
func Serialize(n *Node, indent int) string {
	var buf buffer.Buffer
	serializeLoop(&buf, n, clampIndent(indent))
	return buf.String()
}

// Write serializes node to w with the given indent.
func Write(n *Node, w io.Writer, indent int) error {
	_, err := io.WriteString(w, Serialize(n, indent))
	return err
}

// WriteLine serializes node compactly to w followed by a newline.
func WriteLine(n *Node, w io.Writer) error {
	_, err := fmt.Fprintln(w, Encode(n))
	return err
}

// WriteFile serializes node with the given indent and writes it to
// path, the minimal "read/write a file" affordance the module keeps
// in scope.
func (n *Node) WriteFile(path string, indent int) error {
	return os.WriteFile(path, []byte(Serialize(n, indent)), 0o644)
}
