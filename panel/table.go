package panel

import (
	"fmt"
)

// Cell is a single table entry holding either a scalar value or an ordered
// series of values.
type Cell struct {
	scalar float64
	series Series
	nested bool
}

// ScalarCell returns a cell holding a single scalar value.
func ScalarCell(v float64) Cell {
	return Cell{scalar: v}
}

// SeriesCell returns a cell holding a copy of the provided series.
func SeriesCell(s Series) Cell {
	return Cell{series: s.Copy(), nested: true}
}

// IsSeries reports whether the cell holds a series rather than a scalar.
func (c Cell) IsSeries() bool {
	return c.nested
}

func (c Cell) Scalar() float64 {
	return c.scalar
}

// Series returns a copy of the held series or nil for a scalar cell.
func (c Cell) Series() Series {
	if !c.nested {
		return nil
	}
	return c.series.Copy()
}

// Len returns the number of values held by the cell. Scalar cells have a
// length of 1.
func (c Cell) Len() int {
	if c.nested {
		return len(c.series)
	}
	return 1
}

// Table is a column major table indexed by instance. Every column holds one
// cell per instance and all columns have the same length.
type Table struct {
	cols  []string
	cells [][]Cell
}

// NewTable returns a table with the given column names and row count where
// every cell starts as a zero valued scalar. Column names must be unique
// and non-empty.
func NewTable(columns []string, rows int) (*Table, error) {
	if rows < 0 {
		return nil, fmt.Errorf("row count of %d, %w", rows, ErrNegativeDim)
	}
	if err := checkColumnNames(columns); err != nil {
		return nil, err
	}

	cells := make([][]Cell, len(columns))
	for i := range cells {
		cells[i] = make([]Cell, rows)
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{
		cols:  cols,
		cells: cells,
	}, nil
}

// TableFromSeries builds a nested table from column major series data. The
// number of column names must match the number of data columns and every
// column must hold the same number of series.
func TableFromSeries(columns []string, data [][]Series) (*Table, error) {
	if len(columns) != len(data) {
		return nil, fmt.Errorf("got %d column names for %d columns of data, %w", len(columns), len(data), ErrColMismatch)
	}

	rows := -1
	for c, col := range data {
		if rows >= 0 && len(col) != rows {
			return nil, fmt.Errorf("column %d has %d rows, expected %d, %w", c, len(col), rows, ErrRowMismatch)
		}
		if rows < 0 {
			rows = len(col)
		}
	}
	if rows < 0 {
		rows = 0
	}

	t, err := NewTable(columns, rows)
	if err != nil {
		return nil, err
	}
	for c, col := range data {
		for r, s := range col {
			t.cells[c][r] = SeriesCell(s)
		}
	}
	return t, nil
}

func checkColumnNames(columns []string) error {
	seen := make(map[string]struct{}, len(columns))
	for i, name := range columns {
		if name == "" {
			return fmt.Errorf("empty name at column %d, %w", i, ErrColumnName)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate name %q at column %d, %w", name, i, ErrColumnName)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Shape returns the number of instances and columns.
func (t *Table) Shape() (int, int) {
	if len(t.cells) == 0 {
		return 0, 0
	}
	return len(t.cells[0]), len(t.cells)
}

// Instances returns the number of rows.
func (t *Table) Instances() int {
	rows, _ := t.Shape()
	return rows
}

func (t *Table) NumColumns() int {
	return len(t.cols)
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// At retrieves the cell at a specific row and column.
func (t *Table) At(r, c int) (Cell, error) {
	rows, cols := t.Shape()
	if r < 0 || r >= rows {
		return Cell{}, fmt.Errorf("row %d of %d, %w", r, rows, ErrRowOutOfBounds)
	}
	if c < 0 || c >= cols {
		return Cell{}, fmt.Errorf("column %d of %d, %w", c, cols, ErrColOutOfBounds)
	}
	return t.cells[c][r], nil
}

// Set stores a cell at a specific row and column.
func (t *Table) Set(r, c int, cell Cell) error {
	rows, cols := t.Shape()
	if r < 0 || r >= rows {
		return fmt.Errorf("row %d of %d, %w", r, rows, ErrRowOutOfBounds)
	}
	if c < 0 || c >= cols {
		return fmt.Errorf("column %d of %d, %w", c, cols, ErrColOutOfBounds)
	}
	t.cells[c][r] = cell
	return nil
}

func (t *Table) Copy() *Table {
	rows, _ := t.Shape()
	next, _ := NewTable(t.cols, rows)
	for c, col := range t.cells {
		for r, cell := range col {
			if cell.IsSeries() {
				next.cells[c][r] = SeriesCell(cell.series)
			} else {
				next.cells[c][r] = cell
			}
		}
	}
	return next
}
