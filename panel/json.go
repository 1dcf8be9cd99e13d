package panel

import (
	"fmt"

	"github.com/goccy/go-json"
)

type denseJSON struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// MarshalJSON encodes the array as its shape and row-major data.
func (d *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(denseJSON{
		Shape: d.Shape(),
		Data:  d.Flatten(),
	})
}

// UnmarshalJSON decodes and re-validates a shape and row-major data pair.
func (d *Dense) UnmarshalJSON(b []byte) error {
	var dj denseJSON
	if err := json.Unmarshal(b, &dj); err != nil {
		return err
	}
	next, err := NewDense(dj.Shape, dj.Data)
	if err != nil {
		return err
	}
	*d = *next
	return nil
}

type tableJSON struct {
	Columns []string            `json:"columns"`
	Rows    [][]json.RawMessage `json:"rows"`
}

// MarshalJSON encodes the table row by row where a scalar cell encodes as a
// bare number and a series cell as an array of numbers.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows, cols := t.Shape()
	tj := tableJSON{
		Columns: t.Columns(),
		Rows:    make([][]json.RawMessage, rows),
	}
	for r := 0; r < rows; r++ {
		row := make([]json.RawMessage, cols)
		for c := 0; c < cols; c++ {
			cell := t.cells[c][r]

			var (
				raw []byte
				err error
			)
			if cell.IsSeries() {
				raw, err = json.Marshal([]float64(cell.series))
			} else {
				raw, err = json.Marshal(cell.scalar)
			}
			if err != nil {
				return nil, err
			}
			row[c] = raw
		}
		tj.Rows[r] = row
	}
	return json.Marshal(tj)
}

// UnmarshalJSON decodes and re-validates column names and rectangular rows.
func (t *Table) UnmarshalJSON(b []byte) error {
	var tj tableJSON
	if err := json.Unmarshal(b, &tj); err != nil {
		return err
	}
	next, err := NewTable(tj.Columns, len(tj.Rows))
	if err != nil {
		return err
	}
	for r, row := range tj.Rows {
		if len(row) != len(tj.Columns) {
			return fmt.Errorf("row %d has %d cells, expected %d, %w", r, len(row), len(tj.Columns), ErrColMismatch)
		}
		for c, raw := range row {
			var s []float64
			if err := json.Unmarshal(raw, &s); err == nil {
				next.cells[c][r] = SeriesCell(s)
				continue
			}
			var v float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("unable to decode cell at row %d, column %d, %w", r, c, err)
			}
			next.cells[c][r] = ScalarCell(v)
		}
	}
	*t = *next
	return nil
}
