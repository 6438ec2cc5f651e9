package schema

import (
	"math"

	"github.com/go-clux/clux"
)

// testMultipleOf implements "multipleOf": rule must be a positive
// number; the document number, if present, must be an exact multiple of
// it under floating-point modulo.
func testMultipleOf(node, rule *clux.Node) outcome {
	if !rule.IsNumber() || rule.Number() <= 0 {
		return outError
	}
	if node == nil || !node.IsNumber() {
		return outValid
	}
	return boolOutcome(math.Mod(node.Number(), rule.Number()) == 0)
}
