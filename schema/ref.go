package schema

import "github.com/go-clux/clux"

// testRef checks that "$ref"'s value is a string; resolution happens in
// validate.go's handleRef, which needs the validator's registry, depth,
// and skip-sentinel state.
func testRef(_, rule *clux.Node) outcome {
	if !rule.IsString() {
		return outError
	}
	return outRef
}
