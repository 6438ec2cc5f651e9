package clux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortArrayByDefaultValueOrder(t *testing.T) {
	root, err := Parse(`[3,1,2]`)
	require.NoError(t, err)

	Sort(root)
	require.Equal(t, []float64{1, 2, 3}, values(root))
}

func TestSortObjectByDefaultKeyOrder(t *testing.T) {
	root, err := Parse(`{"c":1,"a":2,"b":3}`)
	require.NoError(t, err)

	Sort(root)

	var keys []string
	for _, c := range root.Children() {
		k, _ := c.Key()
		keys = append(keys, k)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestSortFuncDescending(t *testing.T) {
	root, err := Parse(`[1,3,2]`)
	require.NoError(t, err)

	SortFunc(root, CompareValueDesc)
	require.Equal(t, []float64{3, 2, 1}, values(root))
}

func TestSortIsStable(t *testing.T) {
	root, err := Parse(`[{"k":1,"v":"a"},{"k":1,"v":"b"},{"k":0,"v":"c"}]`)
	require.NoError(t, err)

	SortFunc(root, func(a, b *Node) int {
		return Compare(a.Find("k"), b.Find("k"))
	})

	require.Equal(t, "c", root.At(0).Find("v").StringValue())
	require.Equal(t, "a", root.At(1).Find("v").StringValue())
	require.Equal(t, "b", root.At(2).Find("v").StringValue())
}

func TestReverseInvertsChildren(t *testing.T) {
	root, err := Parse(`[1,2,3]`)
	require.NoError(t, err)

	Reverse(root)
	require.Equal(t, []float64{3, 2, 1}, values(root))
}
