package panel

import (
	"fmt"
)

// IsNested reports whether every cell in the table holds a series rather
// than a scalar. A table with no cells is considered nested.
func IsNested(t *Table) bool {
	for _, col := range t.cells {
		for _, cell := range col {
			if !cell.IsSeries() {
				return false
			}
		}
	}
	return true
}

// NestedToDense converts a nested table to a rank 3 dense array with axes
// (instance, variable, timepoint). The table is left untouched. Every cell
// must hold a series and all series must have the same length.
func NestedToDense(t *Table) (*Dense, error) {
	rows, cols := t.Shape()

	p := -1
	for c, col := range t.cells {
		for r, cell := range col {
			if !cell.IsSeries() {
				return nil, fmt.Errorf("at row %d, column %d, %w", r, c, ErrScalarCell)
			}
			if p >= 0 && cell.Len() != p {
				return nil, fmt.Errorf("series of length %d at row %d, column %d, expected %d, %w", cell.Len(), r, c, p, ErrRaggedData)
			}
			if p < 0 {
				p = cell.Len()
			}
		}
	}
	if p < 0 {
		p = 0
	}

	data := make([]float64, 0, rows*cols*p)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data = append(data, t.cells[c][r].series...)
		}
	}
	return &Dense{
		shape: []int{rows, cols, p},
		data:  data,
	}, nil
}

// DenseToNested converts a rank 3 dense array to its nested table form with
// generated column names var_0 through var_{n-1}.
func DenseToNested(d *Dense) (*Table, error) {
	if d.NDim() != 3 {
		return nil, fmt.Errorf("found shape %v, %w", d.shape, ErrNotRank3)
	}
	m, n, p := d.shape[0], d.shape[1], d.shape[2]

	cols := make([]string, n)
	for c := range cols {
		cols[c] = fmt.Sprintf("var_%d", c)
	}
	t, err := NewTable(cols, m)
	if err != nil {
		return nil, err
	}
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			start := (r*n + c) * p
			t.cells[c][r] = SeriesCell(d.data[start : start+p])
		}
	}
	return t, nil
}
