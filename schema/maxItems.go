package schema

import "github.com/go-clux/clux"

// testMaxItems implements "maxItems": a non-negative integer upper
// bound on an Array's length.
func testMaxItems(node, rule *clux.Node) outcome {
	if !rule.IsUnsigned() {
		return outError
	}
	if node == nil || !node.IsArray() {
		return outValid
	}
	return boolOutcome(node.Length() <= int(rule.Number()))
}
