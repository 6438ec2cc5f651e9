package schema

import "github.com/go-clux/clux"

// testUniqueItems implements "uniqueItems": when true, an Array
// document must have no two deep-equal elements.
func testUniqueItems(node, rule *clux.Node) outcome {
	if !rule.IsBoolean() {
		return outError
	}
	if rule.IsTrue() && node != nil && node.IsArray() {
		return boolOutcome(clux.Is(node, "array of unique optional items"))
	}
	return outValid
}
