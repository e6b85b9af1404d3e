package map2d

import "fmt"

// Cell is a single (row key, column key, value) entry of a Map2D.
type Cell[R any, C any, V any] struct {
	Row    R
	Column C
	Value  V
}

func (c Cell[R, C, V]) String() string {
	return fmt.Sprintf("(r=%v,c=%v,v=%v)", c.Row, c.Column, c.Value)
}

// Source is anything whose cells can be enumerated. Every Map2D is a Source.
type Source[R any, C any, V any] interface {
	Range(f func(r R, c C, v V) bool)
}

// CellsOf collects every cell of src.
func CellsOf[R any, C any, V any](src Source[R, C, V]) []Cell[R, C, V] {
	arr := make([]Cell[R, C, V], 0)
	src.Range(func(r R, c C, v V) bool {
		arr = append(arr, Cell[R, C, V]{Row: r, Column: c, Value: v})
		return true
	})
	return arr
}

// SliceSource adapts a slice of cells to a Source.
type SliceSource[R any, C any, V any] []Cell[R, C, V]

func (s SliceSource[R, C, V]) Range(f func(r R, c C, v V) bool) {
	for _, cell := range s {
		if !f(cell.Row, cell.Column, cell.Value) {
			return
		}
	}
}
