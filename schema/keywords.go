package schema

import "github.com/go-clux/clux"

// outcome is the result a keyword's shape-check tester returns. Simple
// keywords decide validity directly (outValid/outInvalid); keywords
// needing recursive sub-schema evaluation return a marker outcome that
// the central validate loop (validate.go) dispatches on.
type outcome int

const (
	outInvalid outcome = iota
	outValid
	outError

	outDependentSchemas
	outProperties
	outPatternProperties
	outAdditionalProperties
	outItems
	outAdditionalItems
	outTuples
	outRef
	outNot
	outAllOf
	outAnyOf
	outOneOf
	outIf
	outThen
	outElse
)

// tester checks a single keyword's rule (and, where the keyword is a
// plain document constraint, the document node under evaluation) and
// reports what the validate loop should do next. node is nil when the
// sub-schema is checked for shape only, with no document node to check.
type tester func(node, rule *clux.Node) outcome

func boolOutcome(ok bool) outcome {
	if ok {
		return outValid
	}
	return outInvalid
}

// testIsString/testIsObject/testIsBoolean/testIsArray check that an
// annotation-only keyword's value has the declared shape; they never
// inspect the document.
func testIsString(_, rule *clux.Node) outcome {
	return boolOutcomeErr(rule.IsString())
}

func testIsObject(_, rule *clux.Node) outcome {
	return boolOutcomeErr(rule.IsObject())
}

func testIsBoolean(_, rule *clux.Node) outcome {
	return boolOutcomeErr(rule.IsBoolean())
}

func testIsArray(_, rule *clux.Node) outcome {
	return boolOutcomeErr(rule.IsArray())
}

func testValid(_, _ *clux.Node) outcome {
	return outValid
}

func boolOutcomeErr(ok bool) outcome {
	if ok {
		return outValid
	}
	return outError
}

// keywords dispatches a schema rule's keyword name to its tester. A
// name absent from this table is an unrecognized keyword (Warning).
var keywords = map[string]tester{
	"$schema":     testIsString,
	"$id":         testIsString,
	"$defs":       testIsObject,
	"title":       testIsString,
	"description": testIsString,
	"default":     testValid,
	"examples":    testIsArray,
	"readOnly":    testIsBoolean,
	"writeOnly":   testIsBoolean,
	"deprecated":  testIsBoolean,

	"$ref": testRef,

	"type":     testType,
	"const":    testConst,
	"enum":     testEnum,
	"required": testRequired,

	"dependentRequired": testDependentRequired,
	"dependentSchemas":  testDependentSchemas,

	"properties":           testProperties,
	"patternProperties":    testPatternProperties,
	"additionalProperties": testAdditionalProperties,
	"minProperties":        testMinProperties,
	"maxProperties":        testMaxProperties,

	"items":          testItems,
	"additionalItems": testAdditionalItems,
	"minItems":       testMinItems,
	"maxItems":       testMaxItems,
	"uniqueItems":    testUniqueItems,

	"minLength": testMinLength,
	"maxLength": testMaxLength,
	"pattern":   testPattern,
	"format":    testFormat,

	"minimum":          testMinimum,
	"maximum":          testMaximum,
	"exclusiveMinimum": testIsBoolean,
	"exclusiveMaximum": testIsBoolean,
	"multipleOf":       testMultipleOf,

	"not":   testNot,
	"allOf": testAllOf,
	"anyOf": testAnyOf,
	"oneOf": testOneOf,
	"if":    testIf,
	"then":  testThen,
	"else":  testElse,
}
