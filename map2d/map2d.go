package map2d

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/tuannh982/map2d/utils/collections"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	log "github.com/sirupsen/logrus"
)

// Map2D maps (row key, column key) pairs to values.
type Map2D[R comparable, C comparable, V any] interface {
	Source[R, C, V]
	// Put maps (r, c) to v and returns the value it replaced, if any.
	Put(r R, c C, v V) (prev V, existed bool, err error)
	Get(r R, c C) (V, bool)
	GetOrDefault(r R, c C, def V) V
	// Remove unmaps (r, c) and returns the removed value, if any.
	Remove(r R, c C) (V, bool)
	Clear()
	PutAll(source Source[R, C, V]) error
	PutAllToRow(source collections.ReadOnlyMap[C, V], r R) error
	PutAllToColumn(source collections.ReadOnlyMap[R, V], c C) error
	FillMapFromRow(target collections.Map[C, V], r R) error
	FillMapFromColumn(target collections.Map[R, V], c C) error
	ContainsKey(r R, c C) bool
	ContainsRow(r R) bool
	ContainsColumn(c C) bool
	ContainsValue(v V) bool
	ContainsValueFunc(pred func(v V) bool) bool
	Size() int
	RowSize(r R) int
	IsEmpty() bool
	NonEmpty() bool
	Rows() []R
	Columns() []C
	Cells() []Cell[R, C, V]
	RowView(r R) collections.ReadOnlyMap[C, V]
	ColumnView(c C) collections.ReadOnlyMap[R, V]
	RowMapView() collections.ReadOnlyMap[R, collections.ReadOnlyMap[C, V]]
	ColumnMapView() collections.ReadOnlyMap[C, collections.ReadOnlyMap[R, V]]
	String() string
}

type map2D[R comparable, C comparable, V any] struct {
	rows map[R]map[C]V
	size int
	log  *log.Entry
}

// New returns an empty Map2D logging to the standard logrus logger.
func New[R comparable, C comparable, V any]() Map2D[R, C, V] {
	return NewWithLogger[R, C, V](nil)
}

// NewWithLogger is New with a caller-supplied logger. A nil logger selects
// the standard logrus logger.
func NewWithLogger[R comparable, C comparable, V any](logger *log.Entry) Map2D[R, C, V] {
	if logger == nil {
		logger = log.WithFields(log.Fields{"component": "map2d"})
	}
	return &map2D[R, C, V]{
		rows: make(map[R]map[C]V),
		size: 0,
		log:  logger,
	}
}

func (m *map2D[R, C, V]) Put(r R, c C, v V) (prev V, existed bool, err error) {
	if err = validateCell(r, c); err != nil {
		m.log.Debugf("put rejected: %v", err)
		return prev, false, err
	}
	prev, existed = m.put(r, c, v)
	return prev, existed, nil
}

// put assumes r and c are valid.
func (m *map2D[R, C, V]) put(r R, c C, v V) (prev V, existed bool) {
	row, ok := m.rows[r]
	if !ok {
		row = make(map[C]V)
		m.rows[r] = row
		m.log.Debugf("row %v created", r)
	}
	prev, existed = row[c]
	row[c] = v
	if !existed {
		m.size++
	}
	return prev, existed
}

// putCells validates every cell before writing any of them.
func (m *map2D[R, C, V]) putCells(cells []Cell[R, C, V]) error {
	for _, cell := range cells {
		if err := validateCell(cell.Row, cell.Column); err != nil {
			m.log.Debugf("bulk put of %d cells rejected: %v", len(cells), err)
			return err
		}
	}
	for _, cell := range cells {
		m.put(cell.Row, cell.Column, cell.Value)
	}
	return nil
}

func (m *map2D[R, C, V]) Get(r R, c C) (v V, ok bool) {
	row, ok := m.rows[r]
	if !ok {
		return v, false
	}
	v, ok = row[c]
	return v, ok
}

func (m *map2D[R, C, V]) GetOrDefault(r R, c C, def V) V {
	if v, ok := m.Get(r, c); ok {
		return v
	}
	return def
}

func (m *map2D[R, C, V]) Remove(r R, c C) (v V, ok bool) {
	row, ok := m.rows[r]
	if !ok {
		return v, false
	}
	v, ok = row[c]
	if !ok {
		return v, false
	}
	delete(row, c)
	m.size--
	if len(row) == 0 {
		delete(m.rows, r)
		m.log.Debugf("row %v removed", r)
	}
	return v, true
}

func (m *map2D[R, C, V]) Clear() {
	m.log.Debugf("clearing %d cells in %d rows", m.size, len(m.rows))
	m.rows = make(map[R]map[C]V)
	m.size = 0
}

// PutAll copies every cell of source into m. The source is read in full
// before the first write, so m.PutAll(m) is a no-op. When source yields
// the same (r, c) more than once, the last one read wins.
func (m *map2D[R, C, V]) PutAll(source Source[R, C, V]) error {
	return m.putCells(CellsOf(source))
}

func (m *map2D[R, C, V]) PutAllToRow(source collections.ReadOnlyMap[C, V], r R) error {
	cells := make([]Cell[R, C, V], 0, source.Size())
	source.Range(func(c C, v V) bool {
		cells = append(cells, Cell[R, C, V]{Row: r, Column: c, Value: v})
		return true
	})
	return m.putCells(cells)
}

func (m *map2D[R, C, V]) PutAllToColumn(source collections.ReadOnlyMap[R, V], c C) error {
	cells := make([]Cell[R, C, V], 0, source.Size())
	source.Range(func(r R, v V) bool {
		cells = append(cells, Cell[R, C, V]{Row: r, Column: c, Value: v})
		return true
	})
	return m.putCells(cells)
}

// FillMapFromRow force-puts every cell of row r into target. Entries
// already in target under other keys are kept.
func (m *map2D[R, C, V]) FillMapFromRow(target collections.Map[C, V], r R) error {
	for c, v := range m.rows[r] {
		if err := target.Put(c, v, true); err != nil {
			return err
		}
	}
	return nil
}

// FillMapFromColumn force-puts every cell of column c into target, keyed
// by row.
func (m *map2D[R, C, V]) FillMapFromColumn(target collections.Map[R, V], c C) error {
	for r, row := range m.rows {
		if v, ok := row[c]; ok {
			if err := target.Put(r, v, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *map2D[R, C, V]) ContainsKey(r R, c C) bool {
	_, ok := m.Get(r, c)
	return ok
}

func (m *map2D[R, C, V]) ContainsRow(r R) bool {
	_, ok := m.rows[r]
	return ok
}

func (m *map2D[R, C, V]) ContainsColumn(c C) bool {
	for _, row := range m.rows {
		if _, ok := row[c]; ok {
			return true
		}
	}
	return false
}

// ContainsValue compares with reflect.DeepEqual.
func (m *map2D[R, C, V]) ContainsValue(v V) bool {
	return m.ContainsValueFunc(func(x V) bool {
		return reflect.DeepEqual(x, v)
	})
}

func (m *map2D[R, C, V]) ContainsValueFunc(pred func(v V) bool) bool {
	for _, row := range m.rows {
		for _, x := range row {
			if pred(x) {
				return true
			}
		}
	}
	return false
}

func (m *map2D[R, C, V]) Size() int {
	return m.size
}

func (m *map2D[R, C, V]) RowSize(r R) int {
	return len(m.rows[r])
}

func (m *map2D[R, C, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *map2D[R, C, V]) NonEmpty() bool {
	return m.size > 0
}

func (m *map2D[R, C, V]) Rows() []R {
	return maps.Keys(m.rows)
}

func (m *map2D[R, C, V]) Columns() []C {
	columns := collections.NewKeySet[C]()
	for _, row := range m.rows {
		for c := range row {
			if err := columns.Add(c); err != nil && !errors.Is(err, collections.ErrValueExisted) {
				m.log.Warnf("column %v not listed: %v", c, err)
			}
		}
	}
	return columns.Entries()
}

// Range calls f for every cell until f returns false. f must not modify m.
func (m *map2D[R, C, V]) Range(f func(r R, c C, v V) bool) {
	for r, row := range m.rows {
		for c, v := range row {
			if !f(r, c, v) {
				return
			}
		}
	}
}

func (m *map2D[R, C, V]) Cells() []Cell[R, C, V] {
	arr := make([]Cell[R, C, V], 0, m.size)
	m.Range(func(r R, c C, v V) bool {
		arr = append(arr, Cell[R, C, V]{Row: r, Column: c, Value: v})
		return true
	})
	return arr
}

// String renders one line per row. Rows, and cells within a row, are
// ordered by their printed form so the output is stable across calls.
func (m *map2D[R, C, V]) String() string {
	lines := make([]string, 0, len(m.rows))
	for r, row := range m.rows {
		cells := make([]string, 0, len(row))
		for c, v := range row {
			cells = append(cells, fmt.Sprintf("%v=%v", c, v))
		}
		slices.Sort(cells)
		lines = append(lines, fmt.Sprintf("%v:%s", r, cells))
	}
	slices.Sort(lines)
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
