package schema

import "github.com/go-clux/clux"

// Kind classifies a reported Event.
type Kind int

const (
	// Warning reports an unrecognized keyword; evaluation continues.
	Warning Kind = iota
	// Invalid reports a document-level constraint violation; evaluation
	// continues unless the violation occurred inside a boolean
	// sub-context (not/anyOf/oneOf/if).
	Invalid
	// Error reports a malformed schema (a keyword whose value has the
	// wrong shape); evaluation unwinds immediately.
	Error
)

func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case Invalid:
		return "invalid"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is reported to the validator callback for every warning,
// violation, and schema error encountered during evaluation.
type Event struct {
	Kind Kind
	// Node is the document node under evaluation; nil when a sub-schema
	// is checked for shape only, with no document node to apply it to
	// (e.g. a property schema whose property is absent, or a branch that
	// is not taken).
	Node *clux.Node
	// Rule is the schema node that triggered the event: the keyword's
	// value node, whose Key() is the keyword name.
	Rule *clux.Node
	// Path is node's pointer path from the document root, derived via
	// clux.PathOf. Empty when Node is nil.
	Path string
	// Code identifies the message template for localization (e.g.
	// "minimum", "required", "unknown-keyword"); see schema/locales.
	Code string
	// Params are named substitution values for the Code template.
	Params map[string]any
}

// EventFunc receives each reported Event. Returning false aborts
// evaluation (Validate then returns false); returning true continues.
type EventFunc func(Event) bool
