package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImmutableMap(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2}
	m := NewImmutableMap(src)
	src["a"] = 100
	delete(src, "b")
	require.Equal(t, 2, m.Size())
	v, err := m.Get("a")
	require.Nil(t, err)
	require.Equal(t, 1, v)
	require.True(t, m.Contains("b"))
	_, err = m.Get("z")
	require.ErrorIs(t, err, ErrValueNotExisted)
	require.ElementsMatch(t, []string{"a", "b"}, m.Keys())
	require.ElementsMatch(t, []int{1, 2}, m.Values())

	out := m.ToMap()
	out["a"] = 42
	out["c"] = 3
	v, _ = m.Get("a")
	require.Equal(t, 1, v)
	require.False(t, m.Contains("c"))
}

func TestEmptyMap(t *testing.T) {
	m := EmptyMap[string, int]()
	require.Equal(t, 0, m.Size())
	require.False(t, m.Contains("a"))
	require.Empty(t, m.Keys())
	require.NotNil(t, m.ToMap())
	m.Range(func(k string, v int) bool {
		t.Fatal("empty map must not yield entries")
		return true
	})
}
