package frame

import (
	"errors"
	"fmt"

	"github.com/veltran/featmix/feature"
)

// Sentinel errors for frame construction and access.
var (
	// ErrNoColumns indicates construction without any column.
	ErrNoColumns = errors.New("frame: need at least one column")
	// ErrDupColumn indicates two columns sharing a name.
	ErrDupColumn = errors.New("frame: duplicate column name")
	// ErrRagged indicates columns of differing lengths, or a name/column count mismatch.
	ErrRagged = errors.New("frame: columns must have equal length")
	// ErrUnknownColumn indicates a lookup by a name the frame does not carry.
	ErrUnknownColumn = errors.New("frame: unknown column name")
	// ErrOutOfRange indicates a row or column index outside the frame.
	ErrOutOfRange = errors.New("frame: index out of range")
)

// Frame is an immutable ordered collection of named, equal-length columns.
type Frame struct {
	names []string
	cols  [][]feature.Value
	rows  int
}

// New builds a Frame from column names and matching columns.
// Column order is preserved end to end. Zero-row columns are legal.
func New(names []string, cols [][]feature.Value) (*Frame, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d columns: %w", len(names), len(cols), ErrRagged)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("column %q: %w", n, ErrDupColumn)
		}
		seen[n] = struct{}{}
	}
	rows := len(cols[0])
	copied := make([][]feature.Value, len(cols))
	for i, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", names[i], len(col), rows, ErrRagged)
		}
		copied[i] = append([]feature.Value(nil), col...)
	}

	return &Frame{names: append([]string(nil), names...), cols: copied, rows: rows}, nil
}

// NumRows returns the row count.
func (f *Frame) NumRows() int { return f.rows }

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns a copy of the column names, in order.
func (f *Frame) Names() []string { return append([]string(nil), f.names...) }

// Col returns a copy of column i.
func (f *Frame) Col(i int) ([]feature.Value, error) {
	if i < 0 || i >= len(f.cols) {
		return nil, fmt.Errorf("column %d of %d: %w", i, len(f.cols), ErrOutOfRange)
	}

	return append([]feature.Value(nil), f.cols[i]...), nil
}

// ColByName returns a copy of the column labeled name.
func (f *Frame) ColByName(name string) ([]feature.Value, error) {
	for i, n := range f.names {
		if n == name {
			return f.Col(i)
		}
	}

	return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
}

// Row returns a copy of row i, in column order.
func (f *Frame) Row(i int) ([]feature.Value, error) {
	if i < 0 || i >= f.rows {
		return nil, fmt.Errorf("row %d of %d: %w", i, f.rows, ErrOutOfRange)
	}
	row := make([]feature.Value, len(f.cols))
	for j := range f.cols {
		row[j] = f.cols[j][i]
	}

	return row, nil
}

// At returns the cell at row r, column c.
func (f *Frame) At(r, c int) (feature.Value, error) {
	if r < 0 || r >= f.rows || c < 0 || c >= len(f.cols) {
		return nil, fmt.Errorf("cell (%d,%d): %w", r, c, ErrOutOfRange)
	}

	return f.cols[c][r], nil
}

// Rows returns the full table in row-major order, the shape consumed by
// dataset.Encode. The result is a copy.
func (f *Frame) Rows() [][]feature.Value {
	out := make([][]feature.Value, f.rows)
	for i := 0; i < f.rows; i++ {
		row := make([]feature.Value, len(f.cols))
		for j := range f.cols {
			row[j] = f.cols[j][i]
		}
		out[i] = row
	}

	return out
}
