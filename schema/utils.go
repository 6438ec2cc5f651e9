package schema

import "regexp"

// compileSafe wraps regexp.CompilePOSIX so a malformed patternProperties
// key degrades to "matches nothing" rather than panicking; the
// enclosing schema-error handling for a malformed key belongs to the
// keyword's own shape-check tester, not to the matching loop.
func compileSafe(pattern string) (*regexp.Regexp, error) {
	return regexp.CompilePOSIX(pattern)
}
