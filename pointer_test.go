package clux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointerSeedScenario(t *testing.T) {
	root, err := Parse(`{"":0,"a/b":10,"data":[0,1,2]}`)
	require.NoError(t, err)

	require.Equal(t, float64(0), Pointer(root, "/").Number())
	require.Equal(t, float64(10), Pointer(root, "/a~1b").Number())
	require.Equal(t, float64(1), Pointer(root, "/data/1").Number())
	require.Nil(t, Pointer(root, "/missing"))
}

func TestPointerEmptyPathReturnsSelf(t *testing.T) {
	root, err := Parse(`{"a":1}`)
	require.NoError(t, err)
	require.Same(t, root, Pointer(root, ""))
}

func TestPointerRejectsPathWithoutLeadingSlash(t *testing.T) {
	root, err := Parse(`{"a":1}`)
	require.NoError(t, err)
	require.Nil(t, Pointer(root, "a"))
}

func TestPointerTildeEscaping(t *testing.T) {
	root, err := Parse(`{"m~n":1}`)
	require.NoError(t, err)
	require.Equal(t, float64(1), Pointer(root, "/m~0n").Number())
}

func TestPathOfRoundTripsThroughPointer(t *testing.T) {
	root, err := Parse(`{"a":{"b":[1,2,{"c/d":3}]}}`)
	require.NoError(t, err)

	target := root.Find("a").Find("b").At(2).Find("c/d")
	path := PathOf(target)
	require.Same(t, target, Pointer(root, path))
}

func TestPathOfRootIsEmpty(t *testing.T) {
	root, err := Parse(`{"a":1}`)
	require.NoError(t, err)
	require.Equal(t, "", PathOf(root))
}
