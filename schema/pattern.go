package schema

import (
	"regexp"

	"github.com/go-clux/clux"
)

// testPattern implements "pattern": a POSIX extended regular expression
// matched against a String document (§6.3 — regexp.CompilePOSIX gives
// the required leftmost-longest POSIX ERE semantics).
func testPattern(node, rule *clux.Node) outcome {
	if !rule.IsString() {
		return outError
	}
	if node == nil || !node.IsString() {
		return outValid
	}
	re, err := regexp.CompilePOSIX(rule.StringValue())
	if err != nil {
		return outError
	}
	return boolOutcome(re.MatchString(node.StringValue()))
}
