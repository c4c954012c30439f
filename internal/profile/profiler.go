package profile

import (
	"strings"

	"github.com/montanaflynn/stats"

	"skillboard/domain/sheet"
)

// ColumnProfile summarizes the content of one column across a sheet's data
// rows. Purely structural: fill rates and value-length statistics, nothing
// downstream-analytical.
type ColumnProfile struct {
	Index        int     `json:"index"`
	Header       string  `json:"header"`
	FillRate     float64 `json:"fill_rate"`
	UniqueCount  int     `json:"unique_count"`
	MeanLength   float64 `json:"mean_length"`
	MedianLength float64 `json:"median_length"`
}

// Columns profiles every column of the sheet over the rows after the header.
// Sheets with no data rows profile to an empty slice.
func Columns(s *sheet.Sheet) []ColumnProfile {
	total := s.DataRowCount()
	if total == 0 {
		return nil
	}

	width := s.Width()
	header := s.Header()
	profiles := make([]ColumnProfile, 0, width)

	for col := 0; col < width; col++ {
		var lengths []float64
		unique := make(map[string]bool)
		nonEmpty := 0

		for i := s.HeaderRow + 1; i < len(s.Rows); i++ {
			value := strings.TrimSpace(s.Rows[i].Cell(col))
			if value == "" {
				continue
			}
			nonEmpty++
			unique[value] = true
			lengths = append(lengths, float64(len(value)))
		}

		p := ColumnProfile{
			Index:       col,
			Header:      header.Cell(col),
			FillRate:    float64(nonEmpty) / float64(total),
			UniqueCount: len(unique),
		}
		if len(lengths) > 0 {
			// stats errors only on empty input, guarded above
			p.MeanLength, _ = stats.Mean(lengths)
			p.MedianLength, _ = stats.Median(lengths)
		}
		profiles = append(profiles, p)
	}
	return profiles
}
