package structure

import (
	"skillboard/domain/sheet"
)

// Derive runs the full inference pipeline on a sheet: locate the header,
// resolve column roles, group data rows, sort categories. It is deterministic
// and side-effect free apart from writing the located header index back onto
// the sheet. Structural ambiguity never surfaces as an error; every fallback
// produces something renderable.
func Derive(s *sheet.Sheet, table KeywordTable) sheet.StructureView {
	s.HeaderRow = LocateHeaderRow(s)
	roles := ResolveRoles(s)
	return sheet.StructureView{
		HeaderRow:  s.HeaderRow,
		Roles:      roles,
		Categories: SortCategories(Group(s, roles, table)),
	}
}

// Regroup re-derives the grouped view keeping previously resolved roles and
// header position. Used after mutations that do not touch the header row;
// grouping must always run fresh because row indices shift on delete.
func Regroup(s *sheet.Sheet, roles sheet.RoleMap, table KeywordTable) sheet.StructureView {
	return sheet.StructureView{
		HeaderRow:  s.HeaderRow,
		Roles:      roles,
		Categories: SortCategories(Group(s, roles, table)),
	}
}
