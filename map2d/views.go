package map2d

import "github.com/tuannh982/map2d/utils/collections"

func (m *map2D[R, C, V]) RowView(r R) collections.ReadOnlyMap[C, V] {
	row, ok := m.rows[r]
	if !ok {
		return collections.EmptyMap[C, V]()
	}
	return collections.NewImmutableMap(row)
}

func (m *map2D[R, C, V]) ColumnView(c C) collections.ReadOnlyMap[R, V] {
	column := make(map[R]V)
	for r, row := range m.rows {
		if v, ok := row[c]; ok {
			column[r] = v
		}
	}
	return collections.Freeze(column)
}

// RowMapView copies every row bucket; no returned map shares storage with m.
func (m *map2D[R, C, V]) RowMapView() collections.ReadOnlyMap[R, collections.ReadOnlyMap[C, V]] {
	ret := make(map[R]collections.ReadOnlyMap[C, V], len(m.rows))
	for r, row := range m.rows {
		ret[r] = collections.NewImmutableMap(row)
	}
	return collections.Freeze(ret)
}

// ColumnMapView returns m transposed: column key -> row key -> value.
func (m *map2D[R, C, V]) ColumnMapView() collections.ReadOnlyMap[C, collections.ReadOnlyMap[R, V]] {
	columns := make(map[C]map[R]V)
	for r, row := range m.rows {
		for c, v := range row {
			column, ok := columns[c]
			if !ok {
				column = make(map[R]V)
				columns[c] = column
			}
			column[r] = v
		}
	}
	ret := make(map[C]collections.ReadOnlyMap[R, V], len(columns))
	for c, column := range columns {
		ret[c] = collections.Freeze(column)
	}
	return collections.Freeze(ret)
}
