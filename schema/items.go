package schema

import "github.com/go-clux/clux"

// testItems implements "items". A boolean rule states whether items are
// allowed at all: true requires at least one array element, false
// requires none. An object rule validates every element against one
// sub-schema (outItems). An array of sub-schemas performs positional
// tuple validation (outTuples).
func testItems(node, rule *clux.Node) outcome {
	if rule.IsBoolean() {
		if node == nil || !node.IsArray() {
			return outValid
		}
		return boolOutcome(rule.Bool() == (node.Length() > 0))
	}
	if rule.IsObject() {
		return outItems
	}
	if clux.Is(rule, "array of optional objects") {
		return outTuples
	}
	return outError
}
