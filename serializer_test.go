package clux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeCompact(t *testing.T) {
	root, err := Parse(`{"a":1,"b":[true,null,"x"]}`)
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":[true,null,"x"]}`, Encode(root))
}

func TestSerializeIndented(t *testing.T) {
	root, err := Parse(`{"a":1}`)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1\n}", Serialize(root, 2))
}

func TestSerializeClampsIndent(t *testing.T) {
	root, err := Parse(`1`)
	require.NoError(t, err)
	require.Equal(t, Serialize(root, 8), Serialize(root, 20))
	require.Equal(t, Serialize(root, 0), Serialize(root, -5))
}

func TestParseSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,null,"x"]}`,
		`[1,2,3]`,
		`"hello"`,
		`3.14`,
		`-7`,
		`{}`,
		`[]`,
		`{"nested":{"a":[1,2,{"b":3}]}}`,
	}
	for _, in := range inputs {
		root, err := Parse(in)
		require.NoErrorf(t, err, "parsing %q", in)
		out := Encode(root)
		reparsed, err := Parse(out)
		require.NoErrorf(t, err, "reparsing %q", out)
		require.Truef(t, Equal(root, reparsed), "round trip mismatch for %q -> %q", in, out)
	}
}

func TestEscapeRoundTripASCIIMode(t *testing.T) {
	orig := GetEncoding()
	defer SetEncoding(orig)

	root, err := Parse("\"\\u00e9\"")
	require.NoError(t, err)

	SetEncoding(ASCII)
	require.Equal(t, "\"\\u00e9\"", Encode(root))

	SetEncoding(UTF8)
	require.Equal(t, "\"é\"", Encode(root))
}

func TestIntegerFormatting(t *testing.T) {
	root := NewInteger(42)
	require.Equal(t, "42", Encode(root))
}

func TestRealFormattingPreservesRealTag(t *testing.T) {
	root := NewReal(100)
	out := Encode(root)
	require.Equal(t, "100.0", out)

	reparsed, err := Parse(out)
	require.NoError(t, err)
	require.True(t, reparsed.IsReal())
}

func TestQuoteEscapesControlCharacters(t *testing.T) {
	require.Equal(t, `"a\nb"`, Quote("a\nb"))
	require.Equal(t, `"a\"b"`, Quote(`a"b`))
}
