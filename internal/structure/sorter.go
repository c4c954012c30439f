package structure

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"skillboard/domain/sheet"
)

var leadingNumberRe = regexp.MustCompile(`^\d+`)

// Categories without a numeric prefix sort after every numbered one.
const unnumberedRank = math.MaxInt32

// SortCategories orders categories for display by the integer prefix of their
// name ("2. Strategic Skills" ranks 2). Unnumbered categories keep their
// derivation order after all numbered ones; the sort is stable throughout.
func SortCategories(cats []sheet.Category) []sheet.Category {
	sort.SliceStable(cats, func(i, j int) bool {
		return categoryRank(cats[i].Name) < categoryRank(cats[j].Name)
	})
	return cats
}

func categoryRank(name string) int {
	prefix := leadingNumberRe.FindString(name)
	if prefix == "" {
		return unnumberedRank
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		// Prefix longer than an int, e.g. a pasted serial number
		return unnumberedRank
	}
	return n
}
