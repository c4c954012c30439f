package structure

import (
	"regexp"
	"strings"

	"skillboard/domain/sheet"
)

var (
	// "1. Core Skills" style section markers
	numberedSectionRe = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)
	// bare section numbers, e.g. "3"
	bareNumberRe = regexp.MustCompile(`^\d+$`)
	// seed check for the row immediately above the header
	numberedPrefixRe = regexp.MustCompile(`^\d+\.`)
)

// Bare-text section markers must be short enough to be titles, long enough to
// not be stray codes, and contain no colon.
const (
	bareSectionMinLen = 2
	bareSectionMaxLen = 50
)

// Group partitions the sheet's data rows into named categories. Three
// mutually exclusive tiers are tried in order: an explicit category column,
// section-marker scanning, then keyword classification of skill names. Every
// data row lands in exactly one category except rows consumed as section
// markers and fully blank rows. Categories come back in derivation order.
func Group(s *sheet.Sheet, roles sheet.RoleMap, table KeywordTable) []sheet.Category {
	if roles.Resolved(sheet.RoleCategory) {
		return groupByCategoryColumn(s, roles)
	}
	if cats, ok := groupBySections(s); ok {
		return cats
	}
	return groupByKeywords(s, roles, table)
}

// groupByCategoryColumn implements Tier 1: every data row goes into the
// category named by its category cell, blank cells falling back to
// Uncategorized. Original row order is preserved inside each category.
func groupByCategoryColumn(s *sheet.Sheet, roles sheet.RoleMap) []sheet.Category {
	col := roles.Column(sheet.RoleCategory)
	b := newCategoryBuilder()
	for i := s.HeaderRow + 1; i < len(s.Rows); i++ {
		row := s.Rows[i]
		if row.IsBlank() {
			continue
		}
		name := strings.TrimSpace(row.Cell(col))
		if name == "" {
			name = Uncategorized
		}
		b.add(name, sheet.NewSkillRecord(i, row))
	}
	return b.categories()
}

// groupBySections implements Tier 2: walk data rows keeping a current section
// name, consuming marker rows and appending everything else under the current
// section. Returns ok=false when the whole scan finds no marker at all, in
// which case the partial result is discarded in favor of Tier 3.
func groupBySections(s *sheet.Sheet) ([]sheet.Category, bool) {
	current := seedSection(s)
	b := newCategoryBuilder()
	found := false

	for i := s.HeaderRow + 1; i < len(s.Rows); i++ {
		row := s.Rows[i]
		if row.IsBlank() {
			continue
		}
		if name, ok := sectionMarker(row); ok {
			current = name
			// Materialize the section even when no skill row follows,
			// so back-to-back markers still show up as sections.
			b.ensure(current)
			found = true
			continue
		}
		b.add(current, sheet.NewSkillRecord(i, row))
	}

	if !found {
		return nil, false
	}
	return b.categories(), true
}

// seedSection picks the starting section name: the row immediately above the
// header when it reads like a numbered section title, the default otherwise.
func seedSection(s *sheet.Sheet) string {
	if s.HeaderRow > 0 {
		first := strings.TrimSpace(s.Rows[s.HeaderRow-1].Cell(0))
		if numberedPrefixRe.MatchString(first) && len(first) > 3 {
			return first
		}
	}
	return DefaultSection
}

// sectionMarker classifies a row's first cell against the three marker
// patterns, in order: numbered title, bare number with an otherwise blank
// row, bare text with an otherwise blank row.
func sectionMarker(row sheet.Row) (string, bool) {
	first := strings.TrimSpace(row.Cell(0))

	if m := numberedSectionRe.FindStringSubmatch(first); m != nil && len(m[2]) > 3 {
		return first, true
	}
	if bareNumberRe.MatchString(first) && restBlank(row) {
		return first, true
	}
	if first != "" &&
		len(first) > bareSectionMinLen &&
		len(first) < bareSectionMaxLen &&
		!strings.Contains(first, ":") &&
		restBlank(row) {
		return first, true
	}
	return "", false
}

// restBlank reports whether every cell after the first is blank.
func restBlank(row sheet.Row) bool {
	for i := 1; i < len(row); i++ {
		if strings.TrimSpace(row[i]) != "" {
			return false
		}
	}
	return true
}

// groupByKeywords implements Tier 3: classify each non-blank row by its
// skill-name cell against the keyword table. Guarantees a category for every
// row even when the sheet has neither a category column nor section markers.
func groupByKeywords(s *sheet.Sheet, roles sheet.RoleMap, table KeywordTable) []sheet.Category {
	skillCol := roles.Column(sheet.RoleSkill)
	b := newCategoryBuilder()
	for i := s.HeaderRow + 1; i < len(s.Rows); i++ {
		row := s.Rows[i]
		if row.IsBlank() {
			continue
		}
		name := table.Classify(strings.TrimSpace(row.Cell(skillCol)))
		b.add(name, sheet.NewSkillRecord(i, row))
	}
	return b.categories()
}

// categoryBuilder accumulates categories preserving first-seen order, so the
// sorter's tie-break over unnumbered categories stays stable.
type categoryBuilder struct {
	byName map[string]int
	cats   []sheet.Category
}

func newCategoryBuilder() *categoryBuilder {
	return &categoryBuilder{byName: make(map[string]int)}
}

func (b *categoryBuilder) ensure(name string) int {
	if idx, ok := b.byName[name]; ok {
		return idx
	}
	idx := len(b.cats)
	b.byName[name] = idx
	b.cats = append(b.cats, sheet.Category{Name: name})
	return idx
}

func (b *categoryBuilder) add(name string, rec sheet.SkillRecord) {
	idx := b.ensure(name)
	b.cats[idx].Skills = append(b.cats[idx].Skills, rec)
}

func (b *categoryBuilder) categories() []sheet.Category {
	return b.cats
}
