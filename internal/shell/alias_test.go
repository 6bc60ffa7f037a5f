package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasStoreInsertionOrder(t *testing.T) {
	store := NewAliasStore()
	store.Set("b", "echo b")
	store.Set("a", "echo a")
	store.Set("b", "echo b2")

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Name)
	assert.Equal(t, "echo b2", list[0].Replacement)
	assert.Equal(t, "a", list[1].Name)
}

func TestAliasStoreRemove(t *testing.T) {
	store := NewAliasStore()
	store.Set("x", "echo y")
	assert.True(t, store.Remove("x"))
	assert.False(t, store.Remove("x"))
	assert.Empty(t, store.List())
}

func TestAliasExpandOnePass(t *testing.T) {
	store := NewAliasStore()
	store.Set("x", "echo y")

	expanded, err := store.Expand([]string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "y"}, expanded)
}

func TestAliasExpandNoRecursion(t *testing.T) {
	store := NewAliasStore()
	store.Set("x", "x")

	expanded, err := store.Expand([]string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, expanded)
}

func TestAliasExpandPreservesTrailingArgs(t *testing.T) {
	store := NewAliasStore()
	store.Set("ll", "ls -la")

	expanded, err := store.Expand([]string{"ll", "/tmp"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "-la", "/tmp"}, expanded)
}

func TestAliasExpandNoMatch(t *testing.T) {
	store := NewAliasStore()
	expanded, err := store.Expand([]string{"echo", "hi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "hi"}, expanded)
}
