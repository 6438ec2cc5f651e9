package schema

import "github.com/go-clux/clux"

// testOneOf checks that "oneOf"'s value is an array of schema objects;
// the combinator semantics (exactly one sub-schema must pass — every
// branch is still evaluated to determine the count) are applied in
// validate.go.
func testOneOf(_, rule *clux.Node) outcome {
	if !clux.Is(rule, "array of optional objects") {
		return outError
	}
	return outOneOf
}
