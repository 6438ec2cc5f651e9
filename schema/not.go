package schema

import "github.com/go-clux/clux"

// testNot checks that "not"'s value is a schema object; the actual
// negated recursion happens in validate.go.
func testNot(_, rule *clux.Node) outcome {
	if !rule.IsObject() {
		return outError
	}
	return outNot
}
