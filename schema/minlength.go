package schema

import (
	"unicode/utf8"

	"github.com/go-clux/clux"
)

// testMinLength implements "minLength": a non-negative integer lower
// bound on a String's UTF-8 codepoint count.
func testMinLength(node, rule *clux.Node) outcome {
	if !rule.IsUnsigned() {
		return outError
	}
	if node == nil || !node.IsString() {
		return outValid
	}
	return boolOutcome(utf8.RuneCountInString(node.StringValue()) >= int(rule.Number()))
}
