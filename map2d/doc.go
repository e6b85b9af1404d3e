// Package map2d provides Map2D, an in-memory associative container keyed
// by an ordered pair (row key, column key).
//
// Storage is a nested map: every row key owns a row bucket mapping column
// keys to values. A row bucket is created on the first Put into its row
// and dropped the moment its last cell is removed, so ContainsRow never
// reports an empty row. The number of cells is tracked incrementally and
// Size is O(1).
//
// Lookups by row are O(1). Column-oriented reads (ContainsColumn,
// ColumnView, FillMapFromColumn) scan every row bucket, since no column
// index is kept. ContainsValue and ColumnMapView visit every cell.
//
// Views (RowView, ColumnView, RowMapView, ColumnMapView) are snapshots
// returned as collections.ReadOnlyMap. Later writes to the Map2D are not
// visible through a view taken earlier, and a view cannot be used to write
// into the Map2D.
//
// Absence is reported with a bool, never with a reserved value. Nil row or
// column keys (nil interfaces, pointers, channels), and interface keys
// holding unhashable values, are rejected with ErrInvalidKey before
// anything is written.
//
// A Map2D is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize access themselves.
package map2d
