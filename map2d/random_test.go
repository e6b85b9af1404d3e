package map2d

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomAlphanumeric(rng *rand.Rand, minLen, maxLen int) string {
	n := minLen + rng.Intn(maxLen-minLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rng.Intn(len(alphanumeric))]
	}
	return string(b)
}

func TestRandomGrid(t *testing.T) {
	const size = 150
	rng := rand.New(rand.NewSource(42))
	rowKeys := make([]string, size)
	colKeys := make([]string, size)
	values := make([][]string, size)
	for i := 0; i < size; i++ {
		rowKeys[i] = "r" + randomAlphanumeric(rng, 15, 25)
		colKeys[i] = "c" + randomAlphanumeric(rng, 15, 25)
	}
	m := New[string, string, string]()
	for i := 0; i < size; i++ {
		values[i] = make([]string, size)
		for j := 0; j < size; j++ {
			values[i][j] = randomAlphanumeric(rng, 10, 20)
			_, _, err := m.Put(rowKeys[i], colKeys[j], values[i][j])
			require.Nil(t, err)
		}
	}

	require.Equal(t, size*size, m.Size())
	for i := 0; i < size; i++ {
		require.True(t, m.ContainsRow(rowKeys[i]))
		require.True(t, m.ContainsColumn(colKeys[i]))
	}
	rowMap := m.RowMapView()
	columnMap := m.ColumnMapView()
	for i := 0; i < size; i++ {
		rowView := m.RowView(rowKeys[i])
		columnView := m.ColumnView(colKeys[i])
		fromRowMap, err := rowMap.Get(rowKeys[i])
		require.Nil(t, err)
		fromColumnMap, err := columnMap.Get(colKeys[i])
		require.Nil(t, err)
		for j := 0; j < size; j++ {
			v, ok := m.Get(rowKeys[i], colKeys[j])
			require.True(t, ok)
			require.Equal(t, values[i][j], v)
			require.True(t, m.ContainsKey(rowKeys[i], colKeys[j]))

			v, err = rowView.Get(colKeys[j])
			require.Nil(t, err)
			require.Equal(t, values[i][j], v)
			v, err = fromRowMap.Get(colKeys[j])
			require.Nil(t, err)
			require.Equal(t, values[i][j], v)

			v, err = columnView.Get(rowKeys[j])
			require.Nil(t, err)
			require.Equal(t, values[j][i], v)
			v, err = fromColumnMap.Get(rowKeys[j])
			require.Nil(t, err)
			require.Equal(t, values[j][i], v)
		}
	}
}

// TestRandomOperations replays a random sequence of puts and removes
// against a flat map keyed by the pair and checks they agree.
func TestRandomOperations(t *testing.T) {
	type key struct {
		r, c int
	}
	rng := rand.New(rand.NewSource(7))
	m := New[int, int, int]()
	ref := make(map[key]int)
	for step := 0; step < 20000; step++ {
		r, c := rng.Intn(30), rng.Intn(30)
		switch rng.Intn(10) {
		case 0:
			if rng.Intn(50) == 0 {
				m.Clear()
				ref = make(map[key]int)
			}
		case 1, 2, 3, 4:
			v, ok := m.Remove(r, c)
			expected, expectedOk := ref[key{r, c}]
			require.Equal(t, expectedOk, ok)
			require.Equal(t, expected, v)
			delete(ref, key{r, c})
		default:
			v := rng.Int()
			prev, existed, err := m.Put(r, c, v)
			require.Nil(t, err)
			expected, expectedOk := ref[key{r, c}]
			require.Equal(t, expectedOk, existed)
			require.Equal(t, expected, prev)
			ref[key{r, c}] = v
		}
		require.Equal(t, len(ref), m.Size())
	}

	live := 0
	for r := 0; r < 30; r++ {
		rowLive := 0
		for c := 0; c < 30; c++ {
			if m.ContainsKey(r, c) {
				live++
				rowLive++
				require.Equal(t, ref[key{r, c}], m.GetOrDefault(r, c, -1))
			}
		}
		require.Equal(t, rowLive > 0, m.ContainsRow(r))
		require.Equal(t, rowLive, m.RowSize(r))
	}
	require.Equal(t, m.Size(), live)
	require.Equal(t, m.Size(), len(m.Cells()))
}
