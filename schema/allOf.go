package schema

import "github.com/go-clux/clux"

// testAllOf checks that "allOf"'s value is an array of schema objects;
// the combinator semantics (all sub-schemas must pass) are applied in
// validate.go.
func testAllOf(_, rule *clux.Node) outcome {
	if !clux.Is(rule, "array of optional objects") {
		return outError
	}
	return outAllOf
}
