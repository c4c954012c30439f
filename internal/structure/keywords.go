package structure

import (
	"strings"
)

// DefaultSection is the category for rows that match no section marker and no
// keyword group.
const DefaultSection = "General Skills"

// Uncategorized is the Tier-1 category for rows with a blank category cell.
const Uncategorized = "Uncategorized"

// KeywordGroup names a category and the lower-cased substrings that route a
// skill name into it.
type KeywordGroup struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// KeywordTable is the ordered Tier-3 classification table. Order matters: the
// first group with a matching keyword wins. The table is plain configuration,
// replaceable per deployment; the default below routes common skill wording.
type KeywordTable []KeywordGroup

// DefaultKeywordTable returns the built-in classification table.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		{Name: "Human Resources", Keywords: []string{"hr", "recruit", "payroll", "onboard"}},
		{Name: "Compliance & Audit", Keywords: []string{"compliance", "audit", "regulat"}},
		{Name: "Advisory & Consulting", Keywords: []string{"advis", "consult", "client"}},
		{Name: "Risk Management", Keywords: []string{"risk", "mitigat", "insurance"}},
		{Name: "Technology & Analytics", Keywords: []string{"python", "analytics", "data", "software"}},
		{Name: "Strategic Skills", Keywords: []string{"strateg", "planning", "roadmap"}},
		{Name: "Communication", Keywords: []string{"communicat", "present", "negotiat", "writing"}},
		{Name: "Leadership & Management", Keywords: []string{"leader", "manage", "mentor", "coach"}},
	}
}

// Classify returns the category for a skill name, or DefaultSection when no
// group matches.
func (t KeywordTable) Classify(skillName string) string {
	text := strings.ToLower(skillName)
	for _, group := range t {
		for _, kw := range group.Keywords {
			if strings.Contains(text, kw) {
				return group.Name
			}
		}
	}
	return DefaultSection
}
