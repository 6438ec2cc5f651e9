package schema

import "github.com/go-clux/clux"

// testIf/testThen/testElse check that "if"/"then"/"else" each hold a
// schema object; the if/then/else triple is evaluated in validate.go.
func testIf(_, rule *clux.Node) outcome {
	if !rule.IsObject() {
		return outError
	}
	return outIf
}

func testThen(_, rule *clux.Node) outcome {
	if !rule.IsObject() {
		return outError
	}
	return outThen
}

func testElse(_, rule *clux.Node) outcome {
	if !rule.IsObject() {
		return outError
	}
	return outElse
}

// nextCondBranch inspects the schema-object sibling following "if" (or
// a prior "then"): if it is "then", cond selects whether it applies; if
// it is "else", !cond does. Returns (branch, apply, found).
func nextCondBranch(rules []*clux.Node, i int, cond bool) (branch *clux.Node, apply bool, found bool) {
	if i+1 >= len(rules) {
		return nil, false, false
	}
	next := rules[i+1]
	if !next.IsObject() {
		return nil, false, false
	}
	key, _ := next.Key()
	switch key {
	case "then":
		return next, cond, true
	case "else":
		return next, !cond, true
	default:
		return nil, false, false
	}
}
