// Package schema implements the declarative validator: a keyword-driven
// evaluator over clux.Node documents and clux.Node schemas, with
// cross-referencing ($ref), conditional composition (if/then/else),
// logical combinators (allOf/anyOf/oneOf/not), structural rules
// (properties/items/additionalProperties), and a callback-based
// reporting channel.
package schema
