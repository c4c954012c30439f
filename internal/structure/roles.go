package structure

import (
	"strconv"
	"strings"

	"skillboard/domain/sheet"
)

// Content heuristic sampling bounds for the skill-name column.
const (
	skillSampleRows    = 20
	skillCandidateCols = 3
)

// Keyword sets for header-text role matching. The first header cell whose
// lower-cased text contains any keyword claims the role.
var roleKeywords = map[sheet.ColumnRole][]string{
	sheet.RoleDescription:  {"desc", "about", "detail"},
	sheet.RoleMandatory:    {"mandatory", "required"},
	sheet.RoleCategory:     {"category", "section", "group", "area"},
	sheet.RoleBeginner:     {"beginner", "basic"},
	sheet.RoleIntermediate: {"intermediate"},
	sheet.RoleAdvanced:     {"advanced", "proficient"},
	sheet.RoleExpert:       {"expert", "master"},
}

var skillKeywords = []string{"skill", "name", "title"}

// Roles resolved purely by header text, scanned in a fixed order.
var textRoles = []sheet.ColumnRole{
	sheet.RoleDescription,
	sheet.RoleMandatory,
	sheet.RoleCategory,
	sheet.RoleBeginner,
	sheet.RoleIntermediate,
	sheet.RoleAdvanced,
	sheet.RoleExpert,
}

// ResolveRoles maps semantic column roles to column indices relative to the
// sheet's header row. Text-matching roles resolve against header cells only;
// the skill-name role falls back to a content heuristic over the first data
// rows when no header cell matches. Unresolved roles are Unresolved (-1),
// never column 0.
func ResolveRoles(s *sheet.Sheet) sheet.RoleMap {
	header := s.Header()

	roles := make(sheet.RoleMap, len(textRoles)+1)
	for _, role := range textRoles {
		roles[role] = matchHeaderCell(header, roleKeywords[role])
	}

	roles[sheet.RoleSkill] = matchHeaderCell(header, skillKeywords)
	if roles[sheet.RoleSkill] == sheet.Unresolved {
		roles[sheet.RoleSkill] = inferSkillColumn(s, roles)
	}
	return roles
}

// matchHeaderCell returns the index of the first header cell containing any
// of the keywords, or Unresolved.
func matchHeaderCell(header sheet.Row, keywords []string) int {
	for i, cell := range header {
		text := strings.ToLower(cell)
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return i
			}
		}
	}
	return sheet.Unresolved
}

// inferSkillColumn recovers the skill-name column when no header cell names
// it. Many uploaded sheets carry no literal "Skill" header but consistently
// put the skill name in an early column; scoring cell content over a sample
// of data rows finds it. Candidates are columns 0..2 minus columns already
// claimed by another role. Long text scores +2, numbers -1, other non-empty
// values +1; strict > keeps the lowest candidate column on ties.
func inferSkillColumn(s *sheet.Sheet, claimed sheet.RoleMap) int {
	start := s.HeaderRow + 1
	end := start + skillSampleRows
	if end > len(s.Rows) {
		end = len(s.Rows)
	}
	if start >= end {
		return 0
	}

	taken := make(map[int]bool, len(claimed))
	for _, col := range claimed {
		if col >= 0 {
			taken[col] = true
		}
	}

	best := 0
	bestScore := 0
	scored := false
	for col := 0; col < skillCandidateCols; col++ {
		if taken[col] {
			continue
		}
		score := 0
		for i := start; i < end; i++ {
			score += scoreSkillValue(strings.TrimSpace(s.Rows[i].Cell(col)))
		}
		if !scored {
			best = col
			bestScore = score
			scored = true
			continue
		}
		if score > bestScore {
			best = col
			bestScore = score
		}
	}
	if !scored {
		return 0
	}
	return best
}

func scoreSkillValue(value string) int {
	switch {
	case value == "":
		return 0
	case len(value) > 3:
		return 2
	case isNumeric(value):
		return -1
	default:
		return 1
	}
}

func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}
