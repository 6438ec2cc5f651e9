package schema

import "github.com/go-clux/clux"

// testConst implements "const": the document must be deep-equal to the
// rule value. const has no shape restriction of its own.
func testConst(node, rule *clux.Node) outcome {
	if node != nil && !clux.Equal(node, rule) {
		return outInvalid
	}
	return outValid
}
