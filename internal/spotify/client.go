// Package spotify imports playlist tracks through the Web API using the
// client-credentials flow.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAccountsURL = "https://accounts.spotify.com"
	defaultAPIURL      = "https://api.spotify.com"

	// Spotify caps page size at 100 tracks per request.
	pageLimit = 100
)

// Track is one raw playlist row. Unlike songs.Song it is unvalidated: the
// importer writes whatever the API returned and the CSV loader validates on
// the way back in, so a bad year is fixable by hand in the CSV.
type Track struct {
	Title      string
	Artist     string
	Year       int
	SpotifyURL string
}

// Client talks to the Spotify Web API.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	accountsURL  string
	apiURL       string
}

// Option overrides Client defaults.
type Option func(*Client)

// WithHTTPClient replaces the default 15s-timeout client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURLs points the client at alternate endpoints. Used by tests.
func WithBaseURLs(accounts, api string) Option {
	return func(c *Client) {
		c.accountsURL = strings.TrimRight(accounts, "/")
		c.apiURL = strings.TrimRight(api, "/")
	}
}

// NewClient requires API credentials from the developer dashboard.
func NewClient(clientID, clientSecret string, opts ...Option) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("spotify API credentials required: set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET or pass --client-id/--client-secret")
	}
	c := &Client{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		accountsURL:  defaultAccountsURL,
		apiURL:       defaultAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var (
	bareIDPattern      = regexp.MustCompile(`^[a-zA-Z0-9]{22}$`)
	playlistURLPattern = regexp.MustCompile(`spotify\.com/playlist/([a-zA-Z0-9]+)`)
)

// ExtractPlaylistID accepts a playlist URL (query suffixes allowed), a
// spotify:playlist: URI, or a bare 22-character ID.
func ExtractPlaylistID(playlist string) (string, error) {
	if bareIDPattern.MatchString(playlist) {
		return playlist, nil
	}
	if strings.HasPrefix(playlist, "spotify:playlist:") {
		parts := strings.Split(playlist, ":")
		return parts[len(parts)-1], nil
	}
	if m := playlistURLPattern.FindStringSubmatch(playlist); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("could not extract playlist ID from: %s", playlist)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access_token")
	}
	return tok.AccessToken, nil
}

// playlistPage mirrors the fields-filtered playlist-tracks response.
type playlistPage struct {
	Items []struct {
		Track *struct {
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			Album struct {
				ReleaseDate string `json:"release_date"`
			} `json:"album"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
		} `json:"track"`
	} `json:"items"`
	Total int `json:"total"`
}

// FetchPlaylistTracks pages through the whole playlist. Local files show up
// as null tracks and entries without an open.spotify.com URL cannot become
// cards; both are skipped.
func (c *Client) FetchPlaylistTracks(ctx context.Context, playlist string) ([]Track, error) {
	id, err := ExtractPlaylistID(playlist)
	if err != nil {
		return nil, err
	}
	accessToken, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var tracks []Track
	for offset := 0; ; offset += pageLimit {
		page, err := c.fetchPage(ctx, accessToken, id, offset)
		if err != nil {
			return nil, err
		}
		if len(page.Items) == 0 {
			break
		}
		for _, item := range page.Items {
			t := item.Track
			if t == nil || t.ExternalURLs.Spotify == "" {
				continue
			}
			tracks = append(tracks, Track{
				Title:      t.Name,
				Artist:     joinArtists(t.Artists),
				Year:       releaseYear(t.Album.ReleaseDate),
				SpotifyURL: t.ExternalURLs.Spotify,
			})
		}
		if offset+pageLimit >= page.Total {
			break
		}
	}
	return tracks, nil
}

func (c *Client) fetchPage(ctx context.Context, accessToken, playlistID string, offset int) (*playlistPage, error) {
	q := url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(pageLimit)},
		"fields": {"items(track(name,artists,album(release_date),external_urls)),total"},
	}
	endpoint := fmt.Sprintf("%s/v1/playlists/%s/tracks?%s", c.apiURL, playlistID, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching playlist page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("playlist request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var page playlistPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding playlist page: %w", err)
	}
	return &page, nil
}

func joinArtists(artists []struct {
	Name string `json:"name"`
}) string {
	if len(artists) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// releaseYear takes the leading year of a release_date, which may be
// "2006", "2006-11" or "2006-11-03". Returns 0 when absent or malformed.
func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
