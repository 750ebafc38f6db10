package spotify

import (
	"encoding/csv"
	"os"
	"strconv"
)

// SaveCSV writes imported tracks in the format the song loader reads.
func SaveCSV(path string, tracks []Track) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	if err := w.Write([]string{"title", "artist", "year", "spotify_url"}); err != nil {
		return err
	}
	for _, t := range tracks {
		if err := w.Write([]string{t.Title, t.Artist, strconv.Itoa(t.Year), t.SpotifyURL}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
