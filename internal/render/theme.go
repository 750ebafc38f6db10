package render

import "strconv"

// Theme is a decade's color pairing for the card back. Themes are statically
// enumerated; ResolveTheme selects one, nothing ever constructs new ones.
type Theme struct {
	Name    string
	Primary Color
	Accent  Color
}

// decadeThemes maps decade floors to era-evoking colors, ordered newest
// first so resolution is a single forward scan. Floor 0 is the pre-1950
// catch-all.
var decadeThemes = []struct {
	floor int
	theme Theme
}{
	{2020, Theme{Name: "2020s", Primary: hexColor("#6366f1"), Accent: hexColor("#818cf8")}}, // indigo
	{2010, Theme{Name: "2010s", Primary: hexColor("#ec4899"), Accent: hexColor("#f472b6")}}, // pink
	{2000, Theme{Name: "2000s", Primary: hexColor("#10b981"), Accent: hexColor("#34d399")}}, // emerald
	{1990, Theme{Name: "1990s", Primary: hexColor("#14b8a6"), Accent: hexColor("#2dd4bf")}}, // teal
	{1980, Theme{Name: "1980s", Primary: hexColor("#f43f5e"), Accent: hexColor("#fb7185")}}, // neon
	{1970, Theme{Name: "1970s", Primary: hexColor("#f97316"), Accent: hexColor("#fb923c")}}, // orange
	{1960, Theme{Name: "1960s", Primary: hexColor("#a855f7"), Accent: hexColor("#c084fc")}}, // purple
	{1950, Theme{Name: "1950s", Primary: hexColor("#ef4444"), Accent: hexColor("#f87171")}}, // red
	{0, Theme{Name: "pre-1950s", Primary: hexColor("#78716c"), Accent: hexColor("#a8a29e")}},
}

// ringPalette is the fixed front-face arc palette, independent of decade.
var ringPalette = []Color{
	hexColor("#00e5ff"), // cyan
	hexColor("#ff00ff"), // magenta
	hexColor("#ffea00"), // yellow
	hexColor("#ff1493"), // deep pink
	hexColor("#00ff7f"), // spring green
}

var (
	black      = Color{0, 0, 0}
	white      = Color{255, 255, 255}
	cropGray   = hexColor("#9ca3af")
	artistGray = hexColor("#666666")
)

// ResolveTheme maps a release year to its decade theme. Total over all
// integers: boundary years snap down to their own decade and anything before
// 1950 lands in the catch-all bucket.
func ResolveTheme(year int) Theme {
	for _, d := range decadeThemes {
		if year >= d.floor {
			return d.theme
		}
	}
	return decadeThemes[len(decadeThemes)-1].theme
}

// hexColor parses "#rrggbb". Only called on compile-time table literals, so
// a malformed value is a programmer error worth panicking over.
func hexColor(s string) Color {
	if len(s) != 7 || s[0] != '#' {
		panic("bad hex color literal: " + s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		panic("bad hex color literal: " + s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}
