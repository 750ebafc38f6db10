package songs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validCSV = `title,artist,year,spotify_url
Bohemian Rhapsody,Queen,1975,https://open.spotify.com/track/4u7EnebtmKWzUH433cf5Qv
Billie Jean,Michael Jackson,1983,spotify:track:5ChkMS8OtdzJeqyybCc9R5
`

func TestLoadCSV(t *testing.T) {
	list, err := LoadCSV(writeCSV(t, validCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("songs = %d, want 2", len(list))
	}
	first := list[0]
	if first.Title != "Bohemian Rhapsody" || first.Artist != "Queen" || first.Year != 1975 {
		t.Fatalf("first song = %+v", first)
	}
	if first.SpotifyURI != "spotify:track:4u7EnebtmKWzUH433cf5Qv" {
		t.Fatalf("uri = %q", first.SpotifyURI)
	}
}

func TestLoadCSVTrimsWhitespace(t *testing.T) {
	csv := "title,artist,year,spotify_url\n  Song  , Artist ,1999, spotify:track:4u7EnebtmKWzUH433cf5Qv \n"
	list, err := LoadCSV(writeCSV(t, csv))
	if err != nil {
		t.Fatal(err)
	}
	if list[0].Title != "Song" || list[0].Artist != "Artist" {
		t.Fatalf("fields not trimmed: %+v", list[0])
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing column", "title,artist,year\nA,B,1999\n", "missing required columns: spotify_url"},
		{"empty file", "", "empty or has no header"},
		{"no songs", "title,artist,year,spotify_url\n", "contains no songs"},
		{"bad year", validCSV + "X,Y,nineteen,spotify:track:5ChkMS8OtdzJeqyybCc9R5\n", `row 4: invalid year "nineteen"`},
		{"year out of range", validCSV + "X,Y,1850,spotify:track:5ChkMS8OtdzJeqyybCc9R5\n", "row 4: year 1850"},
		{"empty title", "title,artist,year,spotify_url\n,B,1999,spotify:track:5ChkMS8OtdzJeqyybCc9R5\n", "row 2: song title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(writeCSV(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
