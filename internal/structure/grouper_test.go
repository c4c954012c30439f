package structure

import (
	"testing"

	"skillboard/domain/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deriveAll(t *testing.T, matrix [][]string) (*sheet.Sheet, sheet.StructureView) {
	t.Helper()
	s := sheet.NewSheet(matrix)
	view := Derive(s, DefaultKeywordTable())
	return s, view
}

func categoryNames(cats []sheet.Category) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

// Scenario A: explicit category column present, Tier 1 used.
func TestGroup_CategoryColumn(t *testing.T) {
	_, view := deriveAll(t, [][]string{
		{"Skill", "Category", "Mandatory"},
		{"Budget Planning", "Finance", "Yes"},
		{"Vendor Negotiation", "Procurement", "No"},
		{"Cash Flow Modelling", "Finance", "Yes"},
		{"Mystery Task", "", "No"},
	})

	require.Len(t, view.Categories, 3)
	assert.ElementsMatch(t,
		[]string{"Finance", "Procurement", "Uncategorized"},
		categoryNames(view.Categories))

	for _, cat := range view.Categories {
		if cat.Name == "Finance" {
			require.Len(t, cat.Skills, 2)
			// Original row order preserved within the category
			assert.Equal(t, 1, cat.Skills[0].OriginalRow)
			assert.Equal(t, 3, cat.Skills[1].OriginalRow)
		}
	}
}

// Scenario B: numbered section markers, Tier 2 used, numeric sort order.
func TestGroup_NumberedSections(t *testing.T) {
	_, view := deriveAll(t, [][]string{
		{"Skill", "Mandatory"},
		{"2. Advanced Skills", ""},
		{"Scenario Modelling", "Yes"},
		{"1. Core Skills", ""},
		{"Budget Planning", "Yes"},
		{"Vendor Negotiation", "No"},
	})

	require.Len(t, view.Categories, 2)
	assert.Equal(t, "1. Core Skills", view.Categories[0].Name)
	assert.Equal(t, "2. Advanced Skills", view.Categories[1].Name)
	assert.Len(t, view.Categories[0].Skills, 2)
	assert.Len(t, view.Categories[1].Skills, 1)
}

// Scenario C: no category column, no markers, Tier 3 keyword inference.
func TestGroup_KeywordInference(t *testing.T) {
	_, view := deriveAll(t, [][]string{
		{"Skill", "Mandatory"},
		{"Python Data Analysis", "Yes"},
		{"HR Policy Review", "No"},
		{"Zymurgy Appreciation", "No"},
	})

	byName := map[string][]sheet.SkillRecord{}
	for _, cat := range view.Categories {
		byName[cat.Name] = cat.Skills
	}

	require.Contains(t, byName, "Technology & Analytics")
	require.Contains(t, byName, "Human Resources")
	require.Contains(t, byName, DefaultSection)
	assert.Equal(t, "Python Data Analysis", byName["Technology & Analytics"][0].Value(view.Roles, sheet.RoleSkill))
	assert.Equal(t, "HR Policy Review", byName["Human Resources"][0].Value(view.Roles, sheet.RoleSkill))
	assert.Equal(t, "Zymurgy Appreciation", byName[DefaultSection][0].Value(view.Roles, sheet.RoleSkill))
}

func TestGroup_BareNumberAndBareTextMarkers(t *testing.T) {
	_, view := deriveAll(t, [][]string{
		{"Skill", "Mandatory"},
		{"7", ""},
		{"Budget Planning", "Yes"},
		{"Soft Skills", ""},
		{"Vendor Negotiation", "No"},
	})

	require.Equal(t, []string{"7", "Soft Skills"}, categoryNames(view.Categories))
	assert.Len(t, view.Categories[0].Skills, 1)
	assert.Len(t, view.Categories[1].Skills, 1)
}

func TestGroup_ColonRowIsNotAMarker(t *testing.T) {
	// "Note: see appendix" carries a colon, so it must be grouped as a
	// skill row, not consumed as a section title.
	_, view := deriveAll(t, [][]string{
		{"Skill", "Mandatory"},
		{"1. Core Skills", ""},
		{"Note: see appendix", ""},
	})

	require.Len(t, view.Categories, 1)
	assert.Len(t, view.Categories[0].Skills, 1)
}

func TestGroup_SeedsSectionFromRowAboveHeader(t *testing.T) {
	// The row immediately above the located header reads like a numbered
	// section title; rows before the first explicit marker belong to it.
	_, view := deriveAll(t, [][]string{
		{"1. Core Skills", ""},
		{"Skill", "Mandatory"},
		{"Budget Planning", "Yes"},
		{"2. Advanced Skills", ""},
		{"Scenario Modelling", "Yes"},
	})

	require.Equal(t, []string{"1. Core Skills", "2. Advanced Skills"}, categoryNames(view.Categories))
	assert.Len(t, view.Categories[0].Skills, 1)
}

func TestGroup_EmptySectionIsKept(t *testing.T) {
	// A marker immediately followed by another marker still materializes
	// as an (empty) category.
	_, view := deriveAll(t, [][]string{
		{"Skill", "Mandatory"},
		{"1. Core Skills", ""},
		{"2. Advanced Skills", ""},
		{"Scenario Modelling", "Yes"},
	})

	require.Equal(t, []string{"1. Core Skills", "2. Advanced Skills"}, categoryNames(view.Categories))
	assert.Empty(t, view.Categories[0].Skills)
	assert.Len(t, view.Categories[1].Skills, 1)
}

func TestGroup_BlankRowsAreSkippedSilently(t *testing.T) {
	_, view := deriveAll(t, [][]string{
		{"Skill", "Category"},
		{"Budget Planning", "Finance"},
		{"", ""},
		{"Vendor Negotiation", "Finance"},
	})

	require.Len(t, view.Categories, 1)
	assert.Len(t, view.Categories[0].Skills, 2)
}

// Every data row must land in exactly one category or be consumed as a
// marker/blank row - no drops, no duplicates.
func TestGroup_PartitionInvariant(t *testing.T) {
	matrix := [][]string{
		{"Skill", "Mandatory"},
		{"1. Core Skills", ""},
		{"Budget Planning", "Yes"},
		{"", ""},
		{"Vendor Negotiation", "No"},
		{"2. Advanced Skills", ""},
		{"Scenario Modelling", "Yes"},
	}
	s, view := deriveAll(t, matrix)

	seen := map[int]bool{}
	for _, cat := range view.Categories {
		for _, rec := range cat.Skills {
			require.False(t, seen[rec.OriginalRow], "row %d grouped twice", rec.OriginalRow)
			seen[rec.OriginalRow] = true
		}
	}

	// Rows not grouped must be exactly the marker and blank rows.
	markerOrBlank := map[int]bool{1: true, 3: true, 5: true}
	for i := s.HeaderRow + 1; i < len(s.Rows); i++ {
		if markerOrBlank[i] {
			assert.False(t, seen[i], "marker/blank row %d must not be grouped", i)
		} else {
			assert.True(t, seen[i], "data row %d was dropped", i)
		}
	}
}

// Scenario D: pure data, no keyword header anywhere. The pipeline must still
// produce a grouping without errors.
func TestGroup_NoHeaderKeywordsDegenerate(t *testing.T) {
	s, view := deriveAll(t, [][]string{
		{"Budget Planning", "yes"},
		{"Vendor Review", "no"},
		{"Claims Filing", "no"},
	})

	assert.Equal(t, 0, s.HeaderRow)
	total := 0
	for _, cat := range view.Categories {
		total += len(cat.Skills)
	}
	assert.Equal(t, 2, total)
}

func TestKeywordTable_FirstGroupWins(t *testing.T) {
	table := DefaultKeywordTable()

	// "Risk Management" contains both "risk" and "manage"; the risk group
	// is listed first and must win.
	assert.Equal(t, "Risk Management", table.Classify("Risk Management"))
	assert.Equal(t, DefaultSection, table.Classify(""))
	assert.Equal(t, "Leadership & Management", table.Classify("Team Management"))
}
