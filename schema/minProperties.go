package schema

import "github.com/go-clux/clux"

// testMinProperties implements "minProperties": a non-negative integer
// lower bound on an Object's child count.
func testMinProperties(node, rule *clux.Node) outcome {
	if !rule.IsUnsigned() {
		return outError
	}
	if node == nil || !node.IsObject() {
		return outValid
	}
	return boolOutcome(node.Length() >= int(rule.Number()))
}
