package schema

import "github.com/go-clux/clux"

// testPatternProperties checks that "patternProperties" is an object of
// sub-schemas keyed by regular expression. Matching and recursion
// happen in validate.go.
func testPatternProperties(_, rule *clux.Node) outcome {
	if !clux.Is(rule, "object of optional objects") {
		return outError
	}
	for _, sub := range rule.Children() {
		pattern, _ := sub.Key()
		if _, err := compileSafe(pattern); err != nil {
			return outError
		}
	}
	return outPatternProperties
}
