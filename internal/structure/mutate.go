package structure

import (
	"skillboard/domain/core"
	"skillboard/domain/sheet"
)

// Mutations operate on the canonical row matrix. Each one either fully
// applies or rejects before touching any row; there is no partial-success
// mode. Row identity is position, so callers must re-derive every grouped
// view after a mutation instead of patching cached indices.

// EditCell replaces the single cell at (row, col). The target row is padded
// with empty cells when the sheet is ragged and col falls inside the sheet's
// width. Out-of-range indices are a programming error.
func EditCell(s *sheet.Sheet, row, col int, value string) error {
	if row < 0 || row >= len(s.Rows) {
		return core.NewInvalidIndexError("row", row, len(s.Rows))
	}
	width := s.Width()
	if col < 0 || col >= width {
		return core.NewInvalidIndexError("column", col, width)
	}
	for len(s.Rows[row]) <= col {
		s.Rows[row] = append(s.Rows[row], "")
	}
	s.Rows[row][col] = value
	return nil
}

// AddRow appends an empty row sized to the header's column count and returns
// its index (len(rows) before the append). When the category role resolved
// to a real column the new row's category cell is pre-filled so Tier-1
// grouping places it immediately.
func AddRow(s *sheet.Sheet, roles sheet.RoleMap, category string) int {
	width := s.Header().Width()
	row := make(sheet.Row, width)

	if col := roles.Column(sheet.RoleCategory); col >= 0 {
		for len(row) <= col {
			row = append(row, "")
		}
		row[col] = category
	}

	idx := len(s.Rows)
	s.Rows = append(s.Rows, row)
	return idx
}

// DeleteRow removes the row at the given index. Every row after it shifts
// down by one, invalidating all previously derived record indices.
func DeleteRow(s *sheet.Sheet, row int) error {
	if row < 0 || row >= len(s.Rows) {
		return core.NewInvalidIndexError("row", row, len(s.Rows))
	}
	s.Rows = append(s.Rows[:row], s.Rows[row+1:]...)
	if s.HeaderRow > row {
		s.HeaderRow--
	}
	return nil
}
