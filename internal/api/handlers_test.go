package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var validDeck = map[string]any{
	"songs": []map[string]any{
		{"title": "Respect", "artist": "Aretha Franklin", "year": 1967,
			"spotify_url": "https://open.spotify.com/track/7s25THrKz86DM225dOYwnr"},
		{"title": "Hey Ya!", "artist": "OutKast", "year": 2003,
			"spotify_url": "spotify:track:2PpruBYCo4H7WOBJ7Q2EwM"},
	},
}

func TestHealth(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestQRHandler(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qr?text=spotify:track:abc&size=200", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatal("body is not a PNG")
	}
}

func TestQRHandlerRequiresText(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qr", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCardsPDFHandler(t *testing.T) {
	w := postJSON(t, testRouter(), "/api/cards/pdf", validDeck)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatal("body is not a PDF")
	}
}

func TestCardsPDFHandlerRejectsInvalidDeck(t *testing.T) {
	bad := map[string]any{
		"songs": []map[string]any{
			{"title": "", "artist": "A", "year": 1999, "spotify_url": "spotify:track:abc"},
		},
	}
	if w := postJSON(t, testRouter(), "/api/cards/pdf", bad); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if w := postJSON(t, testRouter(), "/api/cards/pdf", map[string]any{"songs": []any{}}); w.Code != http.StatusBadRequest {
		t.Fatalf("empty deck: status = %d", w.Code)
	}
}

func TestCardsPreviewHandler(t *testing.T) {
	w := postJSON(t, testRouter(), "/api/cards/preview", validDeck)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatal("body is not a PNG")
	}
}
