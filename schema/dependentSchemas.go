package schema

import "github.com/go-clux/clux"

// testDependentSchemas checks that "dependentSchemas" is an object
// mapping key -> sub-schema object. The actual per-key conditional
// recursion happens in validate.go's central dispatch loop.
func testDependentSchemas(_, rule *clux.Node) outcome {
	if !clux.Is(rule, "object of optional objects") {
		return outError
	}
	return outDependentSchemas
}
