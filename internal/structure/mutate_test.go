package structure

import (
	"testing"

	"skillboard/domain/core"
	"skillboard/domain/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet() *sheet.Sheet {
	s := sheet.NewSheet([][]string{
		{"Skill", "Category", "Mandatory"},
		{"Budget Planning", "Finance", "Yes"},
		{"Vendor Negotiation", "Procurement", "No"},
		{"Cash Flow Modelling", "Finance", "Yes"},
	})
	s.HeaderRow = 0
	return s
}

func TestEditCell_RoundTrip(t *testing.T) {
	s := testSheet()
	before := s.Matrix()

	require.NoError(t, EditCell(s, 2, 0, "Supplier Negotiation"))
	after := s.Matrix()

	for i := range before {
		for j := range before[i] {
			if i == 2 && j == 0 {
				assert.Equal(t, "Supplier Negotiation", after[i][j])
				continue
			}
			assert.Equal(t, before[i][j], after[i][j], "cell (%d,%d) changed", i, j)
		}
	}
}

func TestEditCell_PadsRaggedRow(t *testing.T) {
	s := sheet.NewSheet([][]string{
		{"Skill", "Category", "Mandatory"},
		{"Budget Planning"},
	})
	s.HeaderRow = 0

	require.NoError(t, EditCell(s, 1, 2, "Yes"))
	assert.Equal(t, "Yes", s.Rows[1].Cell(2))
	assert.Equal(t, "", s.Rows[1].Cell(1))
}

func TestEditCell_InvalidIndex(t *testing.T) {
	s := testSheet()
	snapshot := s.Matrix()

	assert.ErrorIs(t, EditCell(s, 99, 0, "x"), core.ErrInvalidIndex)
	assert.ErrorIs(t, EditCell(s, -1, 0, "x"), core.ErrInvalidIndex)
	assert.ErrorIs(t, EditCell(s, 1, 99, "x"), core.ErrInvalidIndex)
	assert.ErrorIs(t, EditCell(s, 1, -1, "x"), core.ErrInvalidIndex)

	// Rejected before any row is touched
	assert.Equal(t, snapshot, s.Matrix())
}

func TestAddRow_PrefillsCategoryColumn(t *testing.T) {
	s := testSheet()
	roles := ResolveRoles(s)
	require.Equal(t, 1, roles.Column(sheet.RoleCategory))

	idx := AddRow(s, roles, "Finance")

	assert.Equal(t, 4, idx)
	require.Len(t, s.Rows, 5)
	assert.Equal(t, 3, s.Rows[4].Width())
	assert.Equal(t, "Finance", s.Rows[4].Cell(1))
	assert.Equal(t, "", s.Rows[4].Cell(0))

	// The new row groups under its target category on re-derivation.
	view := Regroup(s, roles, DefaultKeywordTable())
	for _, cat := range view.Categories {
		if cat.Name == "Finance" {
			assert.Len(t, cat.Skills, 3)
		}
	}
}

func TestAddRow_NoCategoryColumn(t *testing.T) {
	s := sheet.NewSheet([][]string{
		{"Skill", "Mandatory"},
		{"Budget Planning", "Yes"},
	})
	s.HeaderRow = 0
	roles := ResolveRoles(s)
	require.False(t, roles.Resolved(sheet.RoleCategory))

	idx := AddRow(s, roles, "ignored")
	assert.Equal(t, 2, idx)
	assert.True(t, s.Rows[2].IsBlank())
	assert.Equal(t, 2, s.Rows[2].Width())
}

func TestDeleteRow_ReindexesOnDerive(t *testing.T) {
	s := testSheet()
	require.NoError(t, DeleteRow(s, 1))
	require.Len(t, s.Rows, 3)

	view := Derive(s, DefaultKeywordTable())
	for _, cat := range view.Categories {
		for _, rec := range cat.Skills {
			assert.Less(t, rec.OriginalRow, len(s.Rows))
		}
	}

	// The record formerly at row 2 now reads from row 1.
	found := false
	for _, cat := range view.Categories {
		for _, rec := range cat.Skills {
			if rec.Value(view.Roles, sheet.RoleSkill) == "Vendor Negotiation" {
				assert.Equal(t, 1, rec.OriginalRow)
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestDeleteRow_InvalidIndex(t *testing.T) {
	s := testSheet()
	assert.ErrorIs(t, DeleteRow(s, 99), core.ErrInvalidIndex)
	assert.ErrorIs(t, DeleteRow(s, -1), core.ErrInvalidIndex)
	assert.Len(t, s.Rows, 4)
}

func TestDeleteRow_AboveHeaderShiftsHeaderIndex(t *testing.T) {
	s := sheet.NewSheet([][]string{
		{"Acme skill template", ""},
		{"Skill", "Mandatory"},
		{"Budget Planning", "Yes"},
	})
	s.HeaderRow = 1

	require.NoError(t, DeleteRow(s, 0))
	assert.Equal(t, 0, s.HeaderRow)
	assert.Equal(t, "Skill", s.Header().Cell(0))
}
