package schema

import "github.com/go-clux/clux"

// testAdditionalItems implements "additionalItems". A sub-schema value
// defers to validate.go's central recursion (outAdditionalItems). A
// boolean false, combined with a sibling "items" tuple array, is
// checked directly: the document array must not be longer than the
// tuple.
func testAdditionalItems(node, rule *clux.Node) outcome {
	if rule.IsObject() {
		return outAdditionalItems
	}
	if !rule.IsBoolean() {
		return outError
	}
	if rule.IsFalse() && node != nil && node.IsArray() {
		items := siblingRule(rule, "items")
		if clux.Is(items, "array of optional objects") {
			return boolOutcome(node.Length() <= items.Length())
		}
	}
	return outValid
}
