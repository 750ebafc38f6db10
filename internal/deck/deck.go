package deck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/youruser/hitcards/internal/render"
	"github.com/youruser/hitcards/internal/songs"
)

// Deck is a named, ordered song list ready for rendering.
type Deck struct {
	Name  string
	Songs []songs.Song
}

// Summary returns a text breakdown of card counts per decade theme, newest
// decade first.
func (d Deck) Summary() string {
	counts := map[string]int{}
	years := map[string]int{}
	for _, s := range d.Songs {
		t := render.ResolveTheme(s.Year)
		counts[t.Name]++
		if s.Year > years[t.Name] {
			years[t.Name] = s.Year
		}
	}

	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return years[names[i]] > years[names[j]] })

	var b strings.Builder
	if d.Name != "" {
		fmt.Fprintf(&b, "# %s\n", d.Name)
	}
	fmt.Fprintf(&b, "%d cards\n", len(d.Songs))
	for _, n := range names {
		fmt.Fprintf(&b, "  %-10s %d\n", n, counts[n])
	}
	return b.String()
}
