package schema

import "github.com/go-clux/clux"

func findAllRequired(node, rule *clux.Node) bool {
	for _, name := range rule.Children() {
		if node.Find(name.StringValue()) == nil {
			return false
		}
	}
	return true
}

// testRequired implements "required": an array of strings naming keys
// that must exist in the document object (when the document is an
// object at all).
func testRequired(node, rule *clux.Node) outcome {
	if !clux.Is(rule, "array of optional strings") {
		return outError
	}
	if node == nil || !node.IsObject() {
		return outValid
	}
	return boolOutcome(findAllRequired(node, rule))
}
