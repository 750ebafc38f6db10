package api

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/hitcards/internal/img"
	"github.com/youruser/hitcards/internal/pdf"
	"github.com/youruser/hitcards/internal/qr"
	"github.com/youruser/hitcards/internal/render"
	"github.com/youruser/hitcards/internal/songs"
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// qrHandler returns a PNG QR for the "text" query param.
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query parameter is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	inverted := c.Query("inverted") == "true"

	qrImg, err := qr.Producer{}.Produce(text, size, inverted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qrImg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// songRequest is one unvalidated deck row as posted by a client.
type songRequest struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Year       int    `json:"year"`
	SpotifyURL string `json:"spotify_url"`
}

type deckRequest struct {
	Songs []songRequest `json:"songs"`
}

func (r deckRequest) validate() ([]songs.Song, error) {
	var deck []songs.Song
	for _, row := range r.Songs {
		s, err := songs.New(row.Title, row.Artist, row.Year, row.SpotifyURL)
		if err != nil {
			return nil, err
		}
		deck = append(deck, s)
	}
	return deck, nil
}

func bindDeck(c *gin.Context) ([]songs.Song, bool) {
	var req deckRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	deck, err := req.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if len(deck) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deck contains no songs"})
		return nil, false
	}
	return deck, true
}

// cardsPDFHandler renders a posted deck straight to a PDF response.
func cardsPDFHandler(c *gin.Context) {
	deck, ok := bindDeck(c)
	if !ok {
		return
	}

	gen := render.NewGenerator(qr.Producer{})
	gen.Quiet = true
	surface := pdf.NewA4()
	if err := gen.Render(surface, deck); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := surface.WriteTo(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="cards.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// cardsPreviewHandler returns a raster preview of the first front page's QR
// grid.
func cardsPreviewHandler(c *gin.Context) {
	deck, ok := bindDeck(c)
	if !ok {
		return
	}

	gen := render.NewGenerator(qr.Producer{})
	layout, err := gen.Layout()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	n := layout.CardsPerPage()
	if len(deck) < n {
		n = len(deck)
	}
	qrs := make([]image.Image, 0, n)
	for _, s := range deck[:n] {
		q, err := (qr.Producer{}).Produce(s.SpotifyURI, 300, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		qrs = append(qrs, q)
	}
	out := img.SheetPreview(qrs, layout.Cols, layout.Rows)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
