package structure

import (
	"strings"

	"skillboard/domain/sheet"
)

// Header search never looks past the first ten rows.
const headerScanLimit = 10

// Keywords whose presence marks a row as a likely column-header row.
var headerKeywords = []string{
	"skill",
	"name",
	"mandatory",
	"beginner",
	"intermediate",
	"expert",
	"developing",
	"advanced",
}

// LocateHeaderRow returns the index of the row most likely to be the column
// header. Each candidate row is scored by the number of header keywords its
// joined, lower-cased text contains; the first row reaching the maximum score
// wins. When no keyword appears anywhere the result degrades to row 0 - the
// engine never fails on an unrecognized header.
func LocateHeaderRow(s *sheet.Sheet) int {
	limit := len(s.Rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	best := 0
	bestScore := 0
	for i := 0; i < limit; i++ {
		score := scoreHeaderRow(s.Rows[i])
		// Strict > keeps the first row that reached the running maximum.
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

func scoreHeaderRow(row sheet.Row) int {
	text := strings.ToLower(strings.Join(row, " "))
	score := 0
	for _, kw := range headerKeywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}
