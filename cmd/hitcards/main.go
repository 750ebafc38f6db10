// hitcards generates printable double-sided music-guessing cards: QR code on
// the front, year/title/artist on the back, one sheet per front/back pair.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/youruser/hitcards/internal/deck"
	"github.com/youruser/hitcards/internal/pdf"
	"github.com/youruser/hitcards/internal/qr"
	"github.com/youruser/hitcards/internal/render"
	"github.com/youruser/hitcards/internal/songs"
	"github.com/youruser/hitcards/internal/spotify"
	"github.com/youruser/hitcards/internal/util"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "import":
		runImport(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  hitcards generate -i songs.csv [-o output/cards.pdf] [filter flags]")
	fmt.Fprintln(os.Stderr, "  hitcards import -p <playlist URL or ID> [-o playlist.csv]")
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	input := fs.String("i", "", "path to CSV file containing song data")
	output := fs.String("o", "output/cards.pdf", "output path for the generated PDF")
	decades := fs.String("decades", "", "comma-separated decade floors to keep, e.g. 1980,1990")
	yearFrom := fs.Int("year-from", 0, "keep songs released in or after this year")
	yearTo := fs.Int("year-to", 0, "keep songs released in or before this year")
	artist := fs.String("artist", "", "keep songs whose artist contains this text")
	words := fs.String("match", "", "keep songs whose title or artist contain all these words")
	fs.Parse(args)

	if *input == "" {
		fs.Usage()
		os.Exit(1)
	}

	log.Printf("loading songs from %s", *input)
	list, err := songs.LoadCSV(*input)
	if err != nil {
		log.Fatal("error: ", err)
	}

	opt := songs.FilterOptions{
		YearFrom:  *yearFrom,
		YearTo:    *yearTo,
		FreeWords: *words,
	}
	if *artist != "" {
		opt.Artists = []string{*artist}
	}
	for _, d := range strings.Split(*decades, ",") {
		if d = strings.TrimSpace(d); d != "" {
			floor, err := strconv.Atoi(d)
			if err != nil {
				log.Fatalf("error: invalid decade %q", d)
			}
			opt.Decades = append(opt.Decades, floor)
		}
	}
	list = songs.Filter(list, opt)
	if len(list) == 0 {
		log.Fatal("error: no songs left after filtering")
	}

	d := deck.Deck{Name: strings.TrimSuffix(filepath.Base(*input), ".csv"), Songs: list}
	log.Print(d.Summary())

	if err := util.EnsureParentDir(*output); err != nil {
		log.Fatal("error: ", err)
	}

	gen := render.NewGenerator(qr.Producer{})
	layout, err := gen.Layout()
	if err != nil {
		log.Fatal("error: ", err)
	}
	surface := pdf.NewA4()
	if err := gen.Render(surface, list); err != nil {
		log.Fatal("error: ", err)
	}
	if err := surface.Save(*output); err != nil {
		log.Fatal("error: ", err)
	}

	pages := 2 * ((len(list)-1)/layout.CardsPerPage() + 1)
	log.Printf("generated %d cards in %s", len(list), *output)
	log.Printf("layout: %d columns x %d rows = %d cards per page, %d pages total",
		layout.Cols, layout.Rows, layout.CardsPerPage(), pages)
	log.Println("printing tips:")
	log.Println("  1. print double-sided (flip on short edge)")
	log.Println("  2. use cardstock for durability")
	log.Println("  3. cut along the crop marks")
}

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	playlist := fs.String("p", "", "Spotify playlist URL or ID")
	output := fs.String("o", "playlist.csv", "output path for the CSV file")
	clientID := fs.String("client-id", os.Getenv("SPOTIFY_CLIENT_ID"), "Spotify API client ID")
	clientSecret := fs.String("client-secret", os.Getenv("SPOTIFY_CLIENT_SECRET"), "Spotify API client secret")
	fs.Parse(args)

	if *playlist == "" {
		fs.Usage()
		os.Exit(1)
	}

	client, err := spotify.NewClient(*clientID, *clientSecret)
	if err != nil {
		log.Fatal("error: ", err)
	}

	log.Printf("importing playlist %s", *playlist)
	tracks, err := client.FetchPlaylistTracks(context.Background(), *playlist)
	if err != nil {
		log.Fatal("error: ", err)
	}
	if len(tracks) == 0 {
		log.Fatal("error: playlist contains no importable tracks")
	}

	if err := util.EnsureParentDir(*output); err != nil {
		log.Fatal("error: ", err)
	}
	if err := spotify.SaveCSV(*output, tracks); err != nil {
		log.Fatal("error: ", err)
	}

	log.Printf("imported %d songs to %s", len(tracks), *output)
	log.Printf("next step: hitcards generate -i %s", *output)
}
