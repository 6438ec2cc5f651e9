package schema

import "github.com/go-clux/clux"

// testMaximum implements "maximum", honoring a sibling
// "exclusiveMaximum: true" to switch the bound from inclusive to
// exclusive.
func testMaximum(node, rule *clux.Node) outcome {
	if !rule.IsNumber() {
		return outError
	}
	if node == nil || !node.IsNumber() {
		return outValid
	}
	excl := siblingRule(rule, "exclusiveMaximum")
	if excl != nil && excl.IsTrue() {
		return boolOutcome(node.Number() < rule.Number())
	}
	return boolOutcome(node.Number() <= rule.Number())
}
