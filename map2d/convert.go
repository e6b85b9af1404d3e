package map2d

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// CopyWithConversion builds a new Map2D by passing every row key, column
// key and value of m through rowFn, colFn and valueFn. The functions should
// be pure. When two source keys convert to the same target key, the cell
// written last wins, and the write order is unspecified. If a conversion
// yields a nil key, ErrInvalidKey is returned and no map is built.
func CopyWithConversion[R comparable, C comparable, V any, R2 comparable, C2 comparable, V2 any](
	m Map2D[R, C, V],
	rowFn func(R) R2,
	colFn func(C) C2,
	valueFn func(V) V2,
) (Map2D[R2, C2, V2], error) {
	cells := make([]Cell[R2, C2, V2], 0, m.Size())
	m.Range(func(r R, c C, v V) bool {
		cells = append(cells, Cell[R2, C2, V2]{Row: rowFn(r), Column: colFn(c), Value: valueFn(v)})
		return true
	})
	ret := New[R2, C2, V2]()
	if err := ret.PutAll(SliceSource[R2, C2, V2](cells)); err != nil {
		return nil, err
	}
	return ret, nil
}

func SortedRows[R constraints.Ordered, C comparable, V any](m Map2D[R, C, V]) []R {
	arr := m.Rows()
	slices.Sort(arr)
	return arr
}

func SortedColumns[R comparable, C constraints.Ordered, V any](m Map2D[R, C, V]) []C {
	arr := m.Columns()
	slices.Sort(arr)
	return arr
}
