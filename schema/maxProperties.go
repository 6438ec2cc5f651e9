package schema

import "github.com/go-clux/clux"

// testMaxProperties implements "maxProperties": a non-negative integer
// upper bound on an Object's child count.
func testMaxProperties(node, rule *clux.Node) outcome {
	if !rule.IsUnsigned() {
		return outError
	}
	if node == nil || !node.IsObject() {
		return outValid
	}
	return boolOutcome(node.Length() <= int(rule.Number()))
}
