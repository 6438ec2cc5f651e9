package schema

import "github.com/go-clux/clux"

// defaultMaxDepth bounds $ref/combinator recursion, guarding against
// reference cycles. Same process-global-setting shape as the parser's
// nesting depth cap.
const defaultMaxDepth = 1024

var maxDepth = defaultMaxDepth

// SetMaxDepth sets the process-global validator recursion depth cap.
// Values below 1 are ignored.
func SetMaxDepth(depth int) {
	if depth >= 1 {
		maxDepth = depth
	}
}

// MaxDepth returns the current validator recursion depth cap.
func MaxDepth() int {
	return maxDepth
}

// abort is used as a panic value to unwind the recursive evaluation
// immediately on a schema Error or a callback abort, mirroring the
// original C implementation's setjmp/longjmp non-local exit. It never
// escapes Validate.
type abort struct{}

type validator struct {
	reg      *Map
	callback EventFunc
	skip     *clux.Node
}

func (v *validator) notify(node, rule *clux.Node, kind Kind, code string, params map[string]any) {
	path := ""
	if node != nil {
		path = clux.PathOf(node)
	}
	aborted := false
	if v.callback != nil {
		aborted = !v.callback(Event{
			Kind:   kind,
			Node:   node,
			Rule:   rule,
			Path:   path,
			Code:   code,
			Params: params,
		})
	}
	if aborted || kind == Error {
		panic(abort{})
	}
}

func (v *validator) raiseWarning(node, rule *clux.Node, keyword string) {
	v.notify(node, rule, Warning, "unknown-keyword", map[string]any{"keyword": keyword})
}

func (v *validator) raiseInvalid(node, rule *clux.Node, code string, params map[string]any) {
	v.notify(node, rule, Invalid, code, params)
}

func (v *validator) raiseError(node, rule *clux.Node, keyword string) {
	v.notify(node, rule, Error, "schema-error", map[string]any{"keyword": keyword})
}

// Validate checks document against the schema rooted at schemaRoot.
// reg resolves "$ref" values that are not local ("#...") pointers, by
// absolute $id; it may be nil if no cross-document refs are used.
// callback receives every Warning/Invalid/Error event; it may be nil to
// evaluate silently. Validate returns true only if no Invalid or Error
// was reported and the callback never returned false.
func Validate(document, schemaRoot *clux.Node, reg *Map, callback EventFunc) bool {
	if document == nil || schemaRoot == nil {
		return false
	}
	if !schemaRoot.IsObject() {
		return false
	}
	v := &validator{reg: reg, callback: callback}
	ok := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, isAbort := r.(abort); isAbort {
					ok = false
					return
				}
				panic(r)
			}
		}()
		ok = v.validate(document, schemaRoot.Children(), schemaRoot, 0, false)
	}()
	return ok
}

// keywordOf returns a rule's dispatch name: its own Key() if present
// (a keyword/value child of a schema object).
func keywordOf(rule *clux.Node) (string, bool) {
	return rule.Key()
}

// validate walks rules (the ordered keyword/value children of a schema
// object) against node, recursing into sub-schemas as each keyword's
// semantics require. root is the schema document currently in scope
// for local ("#...") $ref resolution; it changes when a $ref crosses
// into another registered schema. dry suppresses Invalid reporting:
// only the boolean outcome matters (used inside not/anyOf/oneOf/if
// probes and unmatched dependent branches).
func (v *validator) validate(node *clux.Node, rules []*clux.Node, root *clux.Node, depth int, dry bool) bool {
	if depth > maxDepth {
		v.raiseError(node, nil, "$ref")
		return false
	}
	valid := true
	for i := 0; i < len(rules); i++ {
		rule := rules[i]
		name, hasKey := keywordOf(rule)
		if !hasKey {
			v.raiseError(node, rule, "")
			continue
		}
		test, known := keywords[name]
		if !known {
			v.raiseWarning(node, rule, name)
			continue
		}
		switch test(node, rule) {
		case outValid:
			// nothing to do
		case outError:
			v.raiseError(node, rule, name)
		case outInvalid:
			if !dry {
				v.raiseInvalid(node, rule, invalidCode(name), invalidParams(name, rule))
			}
			valid = false
		case outDependentSchemas:
			for _, entry := range rule.Children() {
				key, _ := entry.Key()
				if node != nil && node.IsObject() && node.Find(key) != nil {
					valid = valid && v.validate(node, entry.Children(), root, depth+1, dry)
				} else {
					v.validate(nil, entry.Children(), root, depth+1, true)
				}
			}
		case outProperties:
			valid = valid && v.runProperties(node, rule, root, depth, dry)
		case outPatternProperties:
			valid = valid && v.runPatternProperties(node, rule, root, depth, dry)
		case outAdditionalProperties:
			valid = valid && v.runAdditionalProperties(node, rule, root, depth, dry)
		case outItems:
			valid = valid && v.runItems(node, rule, root, depth, dry)
		case outAdditionalItems:
			valid = valid && v.runAdditionalItems(node, rule, root, depth, dry)
		case outTuples:
			valid = valid && v.runTuples(node, rule, root, depth, dry)
		case outRef:
			next, nextRoot := v.handleRef(node, rule, root)
			if next != nil {
				valid = valid && v.validate(node, next.Children(), nextRoot, depth+1, dry)
			}
		case outNot:
			sub := !v.validate(node, rule.Children(), root, depth+1, true)
			if !dry && !sub {
				v.raiseInvalid(node, rule, "not", nil)
			}
			valid = valid && sub
		case outAllOf, outAnyOf, outOneOf:
			kind := name
			sub := v.runCombinator(node, rule, root, depth, kind)
			if !dry {
				if !sub {
					v.raiseInvalid(node, rule, kind, nil)
					valid = false
				}
			} else {
				valid = valid && sub
			}
		case outIf:
			condValid := v.validate(node, rule.Children(), root, depth+1, true)
			branch, apply, found := nextCondBranch(rules, i, condValid)
			for found {
				i++
				if apply {
					valid = valid && v.validate(node, branch.Children(), root, depth+1, dry)
				} else {
					v.validate(nil, branch.Children(), root, depth+1, true)
				}
				branch, apply, found = nextCondBranch(rules, i, condValid)
			}
		case outThen, outElse:
			// Reached only when not immediately following "if" (a
			// dangling then/else); validate its shape dryly per the
			// original's orphan-branch handling.
			v.validate(nil, rule.Children(), root, depth+1, true)
		}
	}
	return valid
}

func (v *validator) runProperties(node, rule, root *clux.Node, depth int, dry bool) bool {
	valid := true
	for _, propSchema := range rule.Children() {
		name, _ := propSchema.Key()
		matches := findProperties(node, name)
		if node == nil || !node.IsObject() || len(matches) == 0 {
			v.validate(nil, propSchema.Children(), root, depth+1, true)
			continue
		}
		for _, item := range matches {
			valid = valid && v.validate(item, propSchema.Children(), root, depth+1, dry)
		}
	}
	return valid
}

func (v *validator) runPatternProperties(node, rule, root *clux.Node, depth int, dry bool) bool {
	valid := true
	head := []*clux.Node(nil)
	if node != nil && node.IsObject() {
		head = node.Children()
	}
	for _, sub := range rule.Children() {
		pat, _ := sub.Key()
		re, err := compileSafe(pat)
		count := 0
		for _, item := range head {
			key, _ := item.Key()
			if err == nil && re.MatchString(key) {
				valid = valid && v.validate(item, sub.Children(), root, depth+1, dry)
				count++
			}
		}
		if count == 0 {
			v.validate(nil, sub.Children(), root, depth+1, true)
		}
	}
	return valid
}

func (v *validator) runAdditionalProperties(node, rule, root *clux.Node, depth int, dry bool) bool {
	properties := siblingRule(rule, "properties")
	hasProperties := clux.Is(properties, "object of optional objects")
	patterns := siblingRule(rule, "patternProperties")
	hasPatterns := clux.Is(patterns, "object of optional objects")
	valid := true
	count := 0
	if node != nil && node.IsObject() {
		for _, item := range node.Children() {
			key, _ := item.Key()
			if hasProperties && properties.Find(key) != nil {
				continue
			}
			if hasPatterns && matchesAnyPattern(patterns, key) {
				continue
			}
			valid = valid && v.validate(item, rule.Children(), root, depth+1, dry)
			count++
		}
	}
	if count == 0 {
		v.validate(nil, rule.Children(), root, depth+1, true)
	}
	return valid
}

func (v *validator) runItems(node, rule, root *clux.Node, depth int, dry bool) bool {
	if node == nil || !node.IsArray() || node.Length() == 0 {
		v.validate(nil, rule.Children(), root, depth+1, true)
		return true
	}
	valid := true
	for _, item := range node.Children() {
		valid = valid && v.validate(item, rule.Children(), root, depth+1, dry)
	}
	return valid
}

func (v *validator) runAdditionalItems(node, rule, root *clux.Node, depth int, dry bool) bool {
	var extra []*clux.Node
	if node != nil && node.IsArray() {
		if items := siblingRule(rule, "items"); clux.Is(items, "array of optional objects") {
			children := node.Children()
			if items.Length() < len(children) {
				extra = children[items.Length():]
			}
		}
	}
	if len(extra) == 0 {
		v.validate(nil, rule.Children(), root, depth+1, true)
		return true
	}
	valid := true
	for _, item := range extra {
		valid = valid && v.validate(item, rule.Children(), root, depth+1, dry)
	}
	return valid
}

func (v *validator) runTuples(node, rule, root *clux.Node, depth int, dry bool) bool {
	tuples := rule.Children()
	if node == nil || !node.IsArray() || node.Length() == 0 {
		for _, sub := range tuples {
			v.validate(nil, sub.Children(), root, depth+1, true)
		}
		return true
	}
	valid := true
	items := node.Children()
	for i, sub := range tuples {
		if i >= len(items) {
			break
		}
		valid = valid && v.validate(items[i], sub.Children(), root, depth+1, dry)
	}
	return valid
}

func (v *validator) runCombinator(node, rule, root *clux.Node, depth int, kind string) bool {
	branches := rule.Children()
	if len(branches) == 0 {
		return true
	}
	valid := v.validate(node, branches[0].Children(), root, depth+1, true)
	matches := 0
	if valid {
		matches = 1
	}
	for _, sub := range branches[1:] {
		pass := v.validate(node, sub.Children(), root, depth+1, true)
		switch kind {
		case "allOf":
			valid = valid && pass
		case "anyOf":
			valid = valid || pass
		case "oneOf":
			if pass {
				matches++
			}
		}
	}
	if kind == "oneOf" {
		return matches == 1
	}
	return valid
}

// handleRef resolves a "$ref" value against root (local "#"-prefixed
// pointers) or the registry (absolute $id lookups), returning the
// resolved schema object and the schema root now in scope for any
// further local refs inside it. A self-referencing dry probe is
// allowed to recurse exactly one level via the skip sentinel before
// being treated as satisfied, preventing infinite recursion through
// recursive schemas during shape-only evaluation.
func (v *validator) handleRef(node, rule, root *clux.Node) (*clux.Node, *clux.Node) {
	ref := rule.StringValue()
	var next *clux.Node
	nextRoot := root

	switch {
	case ref == "#":
		next = root
	case len(ref) > 0 && ref[0] == '#':
		next = clux.Pointer(root, ref[1:])
	default:
		if v.reg != nil {
			next = v.reg.Lookup(ref)
			nextRoot = next
		}
	}
	if next == nil || !next.IsObject() {
		v.raiseError(node, rule, "$ref")
		return nil, root
	}
	if node == nil {
		if v.skip == rule {
			v.skip = nil
			return nil, root
		}
		if v.skip == nil {
			v.skip = rule
		}
	} else {
		v.skip = nil
	}
	return next, nextRoot
}

func invalidCode(keyword string) string {
	switch keyword {
	case "exclusiveMinimum":
		return "minimum"
	case "exclusiveMaximum":
		return "maximum"
	default:
		return keyword
	}
}

func invalidParams(keyword string, rule *clux.Node) map[string]any {
	switch keyword {
	case "type":
		return map[string]any{"expected": describeType(rule)}
	case "minimum", "minProperties", "minItems", "minLength":
		return map[string]any{"minimum": rule.Number()}
	case "maximum", "maxProperties", "maxItems", "maxLength":
		return map[string]any{"maximum": rule.Number()}
	case "multipleOf":
		return map[string]any{"divisor": rule.Number()}
	case "format":
		return map[string]any{"format": rule.StringValue()}
	case "pattern":
		return map[string]any{"pattern": rule.StringValue()}
	case "additionalProperties":
		return map[string]any{"property": ""}
	default:
		return nil
	}
}

func describeType(rule *clux.Node) string {
	if rule.IsString() {
		return rule.StringValue()
	}
	names := ""
	for i, c := range rule.Children() {
		if i > 0 {
			names += ", "
		}
		names += c.StringValue()
	}
	return names
}
