package embedset

import "fmt"

// Dense is a row-major table of fixed-width float64 embeddings, adapted from
// the teacher's matrix.Dense: one flat backing slice instead of a
// slice-of-slices, so a row is a contiguous, allocation-free sub-slice.
type Dense struct {
	rows, cols int
	data       []float64
}

// denseErrorf wraps an underlying error with Dense method context, matching
// the teacher's matrix.denseErrorf helper.
func denseErrorf(method string, row int, err error) error {
	return fmt.Errorf("Dense.%s(row=%d): %w", method, row, err)
}

// NewDense builds a Dense table from rows of equal length. At least one row
// is required. Returns ErrEmptyCorpus or ErrDimensionMismatch on invalid
// input.
func NewDense(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyCorpus
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrDimensionMismatch
	}
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrDimensionMismatch
		}
		data = append(data, row...)
	}

	return &Dense{rows: len(rows), cols: cols, data: data}, nil
}

// Rows returns the number of embeddings stored.
func (d *Dense) Rows() int {
	return d.rows
}

// Cols returns the embedding dimension.
func (d *Dense) Cols() int {
	return d.cols
}

// At returns the row at the given index as a read-only sub-slice of the
// backing storage — no copy is made, matching the "borrow, don't copy"
// contract embedding providers rely on for large vectors.
func (d *Dense) At(row int) ([]float64, error) {
	if row < 0 || row >= d.rows {
		return nil, denseErrorf("At", row, ErrInvalidRange)
	}
	start := row * d.cols
	return d.data[start : start+d.cols : start+d.cols], nil
}
