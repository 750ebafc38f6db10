package songs

import (
	"fmt"
	"regexp"
	"strings"
)

// Song is one validated row of the input deck. Rendering treats it as
// read-only; construct it via New (or the CSV loader) so the invariants hold.
type Song struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Year       int    `json:"year"`
	SpotifyURL string `json:"spotify_url"`
	SpotifyURI string `json:"spotify_uri"` // spotify:track:<id>, opens the app directly
}

var trackURLPattern = regexp.MustCompile(`spotify\.com/track/([a-zA-Z0-9]+)`)

// New validates the fields and derives the track URI from the URL.
func New(title, artist string, year int, spotifyURL string) (Song, error) {
	if title == "" {
		return Song{}, fmt.Errorf("song title cannot be empty")
	}
	if artist == "" {
		return Song{}, fmt.Errorf("artist cannot be empty")
	}
	if year < 1900 || year > 2100 {
		return Song{}, fmt.Errorf("year %d is out of valid range (1900-2100)", year)
	}
	uri, err := URLToTrackURI(spotifyURL)
	if err != nil {
		return Song{}, err
	}
	return Song{
		Title:      title,
		Artist:     artist,
		Year:       year,
		SpotifyURL: spotifyURL,
		SpotifyURI: uri,
	}, nil
}

// ExtractTrackID pulls the track ID out of either an open.spotify.com track
// URL (query suffixes allowed) or a spotify:track: URI.
func ExtractTrackID(url string) (string, error) {
	if strings.HasPrefix(url, "spotify:track:") {
		parts := strings.Split(url, ":")
		return parts[len(parts)-1], nil
	}
	if m := trackURLPattern.FindStringSubmatch(url); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("could not extract Spotify track ID from: %s", url)
}

// URLToTrackURI converts a Spotify track URL to its spotify: URI form.
func URLToTrackURI(url string) (string, error) {
	id, err := ExtractTrackID(url)
	if err != nil {
		return "", err
	}
	return "spotify:track:" + id, nil
}
