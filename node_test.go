package clux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewScalars(t *testing.T) {
	require.True(t, NewObject().IsObject())
	require.True(t, NewArray().IsArray())
	require.True(t, NewString("x").IsString())
	require.True(t, NewInteger(3).IsInteger())
	require.True(t, NewReal(3.5).IsReal())
	require.True(t, NewBoolean(true).IsBoolean())
	require.True(t, NewNull().IsNull())
}

func TestIsSafeInteger(t *testing.T) {
	require.True(t, NewInteger(9007199254740991).IsSafeInteger())
	require.False(t, NewInteger(9007199254740993).IsSafeInteger())
	require.False(t, NewReal(3).IsSafeInteger())
}

func TestAccessorsOnTree(t *testing.T) {
	root := NewObject()
	a := NewInteger(1)
	SetKey(a, "a")
	require.NoError(t, PushBack(root, a))

	b := NewArray()
	SetKey(b, "b")
	require.NoError(t, PushBack(root, b))

	for _, v := range []*Node{NewBoolean(true), NewNull(), NewString("x")} {
		require.NoError(t, PushBack(b, v))
	}

	require.Equal(t, 2, root.Length())
	require.Equal(t, 3, b.Length())
	require.Same(t, a, root.Find("a"))
	require.Same(t, b, root.Find("b"))
	require.Nil(t, root.Find("missing"))
	require.Same(t, root, a.Root())
	require.Same(t, root, b.At(0).Root())
	require.Equal(t, 2, b.At(0).Depth())
	require.Equal(t, 2, root.Height())
	require.Same(t, b, a.Next())
	require.Same(t, a, b.Prev())
	require.Nil(t, a.Prev())
	require.Nil(t, b.Next())
}
