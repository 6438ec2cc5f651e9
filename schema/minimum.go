package schema

import "github.com/go-clux/clux"

// testMinimum implements "minimum", honoring a sibling
// "exclusiveMinimum: true" to switch the bound from inclusive to
// exclusive.
func testMinimum(node, rule *clux.Node) outcome {
	if !rule.IsNumber() {
		return outError
	}
	if node == nil || !node.IsNumber() {
		return outValid
	}
	excl := siblingRule(rule, "exclusiveMinimum")
	if excl != nil && excl.IsTrue() {
		return boolOutcome(node.Number() > rule.Number())
	}
	return boolOutcome(node.Number() >= rule.Number())
}
