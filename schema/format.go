package schema

import "github.com/go-clux/clux"

// testFormat implements "format": a named predicate (date, time,
// date-time, hostname, email, ipv4, ipv6, uuid, url, identifier)
// checked against a String document. An unrecognized format name is a
// schema error.
func testFormat(node, rule *clux.Node) outcome {
	if !rule.IsString() {
		return outError
	}
	fn, ok := formats[rule.StringValue()]
	if !ok {
		return outError
	}
	if node == nil || !node.IsString() {
		return outValid
	}
	return boolOutcome(fn(node.StringValue()))
}
