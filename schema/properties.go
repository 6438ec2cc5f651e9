package schema

import "github.com/go-clux/clux"

// testProperties checks that "properties" is an object of sub-schemas
// keyed by property name. Recursion into matched document children
// happens in validate.go.
func testProperties(_, rule *clux.Node) outcome {
	if !clux.Is(rule, "object of optional objects") {
		return outError
	}
	return outProperties
}

// findProperties returns every child of node whose key equals name (in
// document order), supporting documents with duplicate keys.
func findProperties(node *clux.Node, name string) []*clux.Node {
	var out []*clux.Node
	if node == nil {
		return out
	}
	for _, c := range node.Children() {
		if k, has := c.Key(); has && k == name {
			out = append(out, c)
		}
	}
	return out
}
