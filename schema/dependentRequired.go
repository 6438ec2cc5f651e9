package schema

import "github.com/go-clux/clux"

// testDependentRequired implements "dependentRequired": an object
// mapping key -> array-of-strings. For each mapping present in the
// document, the listed keys must also be present.
func testDependentRequired(node, rule *clux.Node) outcome {
	if !rule.IsObject() {
		return outError
	}
	valid := true
	for _, entry := range rule.Children() {
		if !clux.Is(entry, "array of optional strings") {
			return outError
		}
		if valid && node != nil && node.IsObject() {
			key, _ := entry.Key()
			if node.Find(key) != nil && !findAllRequired(node, entry) {
				valid = false
			}
		}
	}
	return boolOutcome(valid)
}
