package schema

import "github.com/go-clux/clux"

// testMinItems implements "minItems": a non-negative integer lower
// bound on an Array's length.
func testMinItems(node, rule *clux.Node) outcome {
	if !rule.IsUnsigned() {
		return outError
	}
	if node == nil || !node.IsArray() {
		return outValid
	}
	return boolOutcome(node.Length() >= int(rule.Number()))
}
