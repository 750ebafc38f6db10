package songs

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var requiredColumns = []string{"title", "artist", "year", "spotify_url"}

// LoadCSV loads and validates a song deck from a CSV file with columns
// title, artist, year, spotify_url. Row numbers in errors count the header
// as row 1, matching what a spreadsheet shows.
func LoadCSV(path string) ([]Song, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s is empty or has no header row", path)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv %s is missing required columns: %s", path, strings.Join(missing, ", "))
	}

	get := func(row []string, name string) string {
		if idx := cols[name]; idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var out []Song
	for i, row := range rows[1:] {
		rowNum := i + 2 // header is row 1
		yearStr := get(row, "year")
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid year %q - must be a number", rowNum, yearStr)
		}
		s, err := New(get(row, "title"), get(row, "artist"), year, get(row, "spotify_url"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("csv %s contains no songs", path)
	}
	return out, nil
}
