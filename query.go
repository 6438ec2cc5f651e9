package clux

import "strings"

type predicate func(*Node) bool

func isAny(*Node) bool { return true }

var queryKinds = []struct {
	singular, plural string
	fn               predicate
}{
	{"item", "items", isAny},
	{"iterable", "iterables", (*Node).IsIterable},
	{"scalar", "scalars", (*Node).IsScalar},
	{"object", "objects", (*Node).IsObject},
	{"array", "arrays", (*Node).IsArray},
	{"string", "strings", (*Node).IsString},
	{"integer", "integers", (*Node).IsInteger},
	{"unsigned", "unsigneds", (*Node).IsUnsigned},
	{"real", "reals", (*Node).IsReal},
	{"number", "numbers", (*Node).IsNumber},
	{"boolean", "booleans", (*Node).IsBoolean},
	{"null", "nulls", (*Node).IsNull},
}

// maxQueryTokens caps how many whitespace-separated words a query
// string contributes; queries longer than this never match (they
// can't fit any recognized shape anyway).
const maxQueryTokens = 6

type query struct {
	unique          bool
	iterable        bool
	childOptional   bool
	childUnique     bool
	fn              [2]predicate
}

func setFunction(q *query, token string, slot int) bool {
	for _, k := range queryKinds {
		text := k.singular
		if slot == 1 {
			text = k.plural
		}
		if token == text {
			q.fn[slot] = k.fn
			return true
		}
	}
	return false
}

func setQuery(q *query, tokens []string) bool {
	if len(tokens) > 0 && tokens[0] == "unique" {
		q.unique = true
		tokens = tokens[1:]
	}
	if len(tokens) == 0 || !setFunction(q, tokens[0], 0) {
		return false
	}
	if len(tokens) >= 2 {
		if tokens[1] != "of" {
			return false
		}
		q.iterable = true
	}
	if len(tokens) >= 4 {
		if !setChildSetting(q, tokens[2]) {
			return false
		}
	}
	if len(tokens) >= 5 {
		if !setChildSetting(q, tokens[3]) {
			return false
		}
	}
	if len(tokens) >= 2 {
		return setFunction(q, tokens[len(tokens)-1], 1)
	}
	return true
}

func setChildSetting(q *query, token string) bool {
	if !q.childOptional && token == "optional" {
		q.childOptional = true
		return true
	}
	if !q.childUnique && token == "unique" {
		q.childUnique = true
		return true
	}
	return false
}

func hasSimpleChildren(node *Node, fn predicate) bool {
	for _, c := range node.children {
		if !fn(c) {
			return false
		}
	}
	return true
}

func hasUniqueProperties(node *Node, fn predicate) bool {
	for i, c := range node.children {
		if !fn(c) {
			return false
		}
		for j := 0; j < i; j++ {
			if node.children[j].key == c.key {
				return false
			}
		}
	}
	return true
}

func hasUniqueItems(node *Node, fn predicate) bool {
	for i, c := range node.children {
		if !fn(c) {
			return false
		}
		for j := 0; j < i; j++ {
			if Equal(node.children[j], c) {
				return false
			}
		}
	}
	return true
}

func hasUniqueChildren(node *Node, fn predicate) bool {
	if node.tag == Object {
		return hasUniqueProperties(node, fn)
	}
	return hasUniqueItems(node, fn)
}

func runQuery(q *query, node *Node) bool {
	if !q.fn[0](node) || (q.unique && !IsUnique(node)) {
		return false
	}
	if q.iterable {
		if len(node.children) == 0 {
			return q.childOptional && node.IsIterable()
		}
		if q.childUnique {
			return hasUniqueChildren(node, q.fn[1])
		}
		return hasSimpleChildren(node, q.fn[1])
	}
	return true
}

// Is reports whether node satisfies the small query-language predicate
// described by text, e.g. "unique integer", "array of strings", or
// "object of optional unique objects". The accepted shapes are
// "[unique] <kind>" and "[unique] <kind> of [optional] [unique] <kinds>",
// where a kind is one of the singular names in queryKinds and the word
// after "of" is its plural.
func Is(node *Node, text string) bool {
	if node == nil {
		return false
	}
	tokens := strings.Fields(text)
	if len(tokens) > maxQueryTokens {
		return false
	}

	var q query
	if !setQuery(&q, tokens) {
		return false
	}
	return runQuery(&q, node)
}

func isUniqueProperty(node *Node) bool {
	for _, c := range node.parent.children {
		if c != node && c.key == node.key {
			return false
		}
	}
	return true
}

func isUniqueItem(node *Node) bool {
	for _, c := range node.parent.children {
		if c != node && Equal(c, node) {
			return false
		}
	}
	return true
}

// IsUnique reports whether node has no sibling equal to it: by key if
// node's parent is an Object, by deep value equality if it's an Array.
// A root node is trivially unique.
func IsUnique(node *Node) bool {
	if node == nil || node.parent == nil {
		return true
	}
	if node.hasKey {
		return isUniqueProperty(node)
	}
	return isUniqueItem(node)
}
