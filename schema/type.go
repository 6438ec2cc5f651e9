package schema

import "github.com/go-clux/clux"

var typeNames = []string{"object", "array", "string", "integer", "number", "boolean", "null"}

func typeBit(name string) int {
	for i, t := range typeNames {
		if t == name {
			return 1 << uint(i+1)
		}
	}
	return 0
}

func addType(rule *clux.Node, mask int) (int, bool) {
	if !rule.IsString() {
		return 0, false
	}
	bit := typeBit(rule.StringValue())
	if bit == 0 {
		return 0, false
	}
	return mask | bit, true
}

func nodeTypeMask(node *clux.Node) int {
	switch {
	case node.IsObject():
		return typeBit("object")
	case node.IsArray():
		return typeBit("array")
	case node.IsString():
		return typeBit("string")
	case node.IsInteger():
		return typeBit("integer")
	case node.IsReal():
		return typeBit("number")
	case node.IsBoolean():
		return typeBit("boolean")
	case node.IsNull():
		return typeBit("null")
	default:
		return 0
	}
}

// testType implements the "type" keyword: a string or array-of-strings
// selecting {object,array,string,integer,number,boolean,null}. A
// document Integer node matches either the "integer" or the "number"
// bit; a Real node matches only "number".
func testType(node, rule *clux.Node) outcome {
	var mask int
	var ok bool

	if rule.IsString() {
		mask, ok = addType(rule, 0)
	} else if clux.Is(rule, "array of optional strings") {
		ok = true
		for _, c := range rule.Children() {
			var bit bool
			if mask, bit = addType(c, mask); !bit {
				ok = false
				break
			}
		}
	}
	if !ok {
		return outError
	}
	if node == nil {
		return outValid
	}
	bit := nodeTypeMask(node)
	if mask&bit != 0 {
		return outValid
	}
	// "number" also accepts Integer nodes.
	if node.IsInteger() && mask&typeBit("number") != 0 {
		return outValid
	}
	return outInvalid
}
