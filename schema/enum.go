package schema

import "github.com/go-clux/clux"

// testEnum implements "enum": the rule must be an array, and the
// document must be deep-equal to at least one of its elements.
func testEnum(node, rule *clux.Node) outcome {
	if !rule.IsArray() {
		return outError
	}
	if node == nil {
		return outValid
	}
	for _, c := range rule.Children() {
		if clux.Equal(node, c) {
			return outValid
		}
	}
	return outInvalid
}
