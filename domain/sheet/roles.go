package sheet

// ColumnRole is a semantic label assigned to a column index.
type ColumnRole string

const (
	RoleSkill       ColumnRole = "skill"
	RoleDescription ColumnRole = "description"
	RoleMandatory   ColumnRole = "mandatory"
	RoleCategory    ColumnRole = "category"

	// Proficiency level roles, one rating column each
	RoleBeginner     ColumnRole = "beginner"
	RoleIntermediate ColumnRole = "intermediate"
	RoleAdvanced     ColumnRole = "advanced"
	RoleExpert       ColumnRole = "expert"
)

// Unresolved marks a role with no matching column. Consumers must treat it as
// "column absent", never as column 0.
const Unresolved = -1

// LevelRoles lists the proficiency rating roles in display order.
var LevelRoles = []ColumnRole{RoleBeginner, RoleIntermediate, RoleAdvanced, RoleExpert}

// RoleMap maps semantic roles to zero-based column indices. Resolved once per
// sheet relative to the header row; recomputed only when the header changes.
type RoleMap map[ColumnRole]int

// Column returns the column index for a role, or Unresolved when the role has
// no column (including roles absent from the map entirely).
func (m RoleMap) Column(role ColumnRole) int {
	if m == nil {
		return Unresolved
	}
	if col, ok := m[role]; ok {
		return col
	}
	return Unresolved
}

// Resolved reports whether a role matched a real column.
func (m RoleMap) Resolved(role ColumnRole) bool {
	return m.Column(role) >= 0
}

// SkillRecord is a non-owning view over one data row. It shares the row's
// backing storage with the Sheet; it never copies ownership. OriginalRow is
// the provenance index and is invalid after any sheet mutation.
type SkillRecord struct {
	OriginalRow int `json:"original_row"`
	Cells       Row `json:"cells"`
}

// NewSkillRecord creates a record viewing the given row at its original index.
func NewSkillRecord(originalRow int, cells Row) SkillRecord {
	return SkillRecord{OriginalRow: originalRow, Cells: cells}
}

// Value reads the cell this record holds for a role, or "" when the role is
// unresolved.
func (r SkillRecord) Value(roles RoleMap, role ColumnRole) string {
	col := roles.Column(role)
	if col < 0 {
		return ""
	}
	return r.Cells.Cell(col)
}

// Category is a display-only grouping of skill records. Categories are
// recomputed from scratch on every structural change and never mutated.
type Category struct {
	Name   string        `json:"name"`
	Skills []SkillRecord `json:"skills"`
}

// StructureView is the derived read-path output of the engine: the located
// header, the resolved roles, and the grouped, sorted categories.
type StructureView struct {
	HeaderRow  int        `json:"header_row"`
	Roles      RoleMap    `json:"roles"`
	Categories []Category `json:"categories"`
}

// SkillCount returns the total number of skill records across all categories.
func (v StructureView) SkillCount() int {
	n := 0
	for _, cat := range v.Categories {
		n += len(cat.Skills)
	}
	return n
}
