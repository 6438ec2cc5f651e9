package schema

import "github.com/go-clux/clux"

// testAdditionalProperties implements "additionalProperties". A
// sub-schema value defers to validate.go's central recursion
// (outAdditionalProperties). A boolean false is checked directly here:
// the document must not carry any key left uncovered by the sibling
// "properties" and "patternProperties" rules.
func testAdditionalProperties(node, rule *clux.Node) outcome {
	if rule.IsObject() {
		return outAdditionalProperties
	}
	if !rule.IsBoolean() {
		return outError
	}
	if rule.IsFalse() && node != nil && node.IsObject() {
		properties := siblingRule(rule, "properties")
		hasProperties := clux.Is(properties, "object of optional objects")
		patterns := siblingRule(rule, "patternProperties")
		hasPatterns := clux.Is(patterns, "object of optional objects")
		for _, c := range node.Children() {
			key, _ := c.Key()
			if hasProperties && properties.Find(key) != nil {
				continue
			}
			if hasPatterns && matchesAnyPattern(patterns, key) {
				continue
			}
			return outInvalid
		}
	}
	return outValid
}

// matchesAnyPattern reports whether key matches any regular-expression
// key of the "patternProperties" schema object. A malformed pattern is
// skipped: its own shape-check (testPatternProperties) already flags
// the schema error.
func matchesAnyPattern(patterns *clux.Node, key string) bool {
	for _, sub := range patterns.Children() {
		pat, _ := sub.Key()
		re, err := compileSafe(pat)
		if err == nil && re.MatchString(key) {
			return true
		}
	}
	return false
}

// siblingRule returns the schema-object child named name alongside
// rule (i.e. another keyword of the same schema object), or nil.
func siblingRule(rule *clux.Node, name string) *clux.Node {
	parent := rule.Parent()
	if parent == nil {
		return nil
	}
	return parent.Find(name)
}
