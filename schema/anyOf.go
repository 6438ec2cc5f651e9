package schema

import "github.com/go-clux/clux"

// testAnyOf checks that "anyOf"'s value is an array of schema objects;
// the combinator semantics (at least one sub-schema must pass) are
// applied in validate.go.
func testAnyOf(_, rule *clux.Node) outcome {
	if !clux.Is(rule, "array of optional objects") {
		return outError
	}
	return outAnyOf
}
