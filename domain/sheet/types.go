package sheet

import (
	"strings"
)

// Row is an ordered sequence of cell values. A row's position inside a Sheet
// is its identity: rows are never reordered, and every derived record keeps
// the original row index so edits can be written back to the right place.
type Row []string

// Cell returns the value at column i, or "" when the row is shorter than i.
// Absent cells and missing columns are indistinguishable from empty cells.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// IsBlank reports whether every cell in the row is empty after trimming.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Width returns the number of cells in the row.
func (r Row) Width() int {
	return len(r)
}

// Sheet is the canonical in-memory representation of one spreadsheet tab.
// It owns the row matrix; all grouped views are derived from it and discarded
// on re-derivation. HeaderRow is computed by the header locator and always
// falls inside the first ten rows.
type Sheet struct {
	Rows      []Row `json:"rows"`
	HeaderRow int   `json:"header_row"`
}

// NewSheet builds a Sheet from a raw string matrix. Rows are copied so the
// sheet owns its cells; nil rows are coerced to empty rows so the engine
// never sees a missing-cell state.
func NewSheet(matrix [][]string) *Sheet {
	rows := make([]Row, len(matrix))
	for i, raw := range matrix {
		rows[i] = append(Row{}, raw...)
	}
	return &Sheet{Rows: rows}
}

// Matrix returns a copy of the flat string matrix for persistence. The shape
// is identical to what was ingested except for cells touched by mutations.
func (s *Sheet) Matrix() [][]string {
	matrix := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		matrix[i] = append([]string{}, row...)
	}
	return matrix
}

// Header returns the header row, or an empty row when the sheet is empty.
func (s *Sheet) Header() Row {
	if s.HeaderRow < 0 || s.HeaderRow >= len(s.Rows) {
		return Row{}
	}
	return s.Rows[s.HeaderRow]
}

// Width returns the column count of the sheet, taken from the header row and
// widened to the longest row so ragged input never truncates edits.
func (s *Sheet) Width() int {
	width := s.Header().Width()
	for _, row := range s.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// DataRowCount returns the number of rows after the header row.
func (s *Sheet) DataRowCount() int {
	n := len(s.Rows) - s.HeaderRow - 1
	if n < 0 {
		return 0
	}
	return n
}
