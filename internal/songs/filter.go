package songs

import "strings"

// FilterOptions prunes a deck before generation. Zero values pass everything.
type FilterOptions struct {
	Decades   []int  // decade floors, e.g. 1980 keeps 1980-1989
	YearFrom  int    // inclusive, 0 = unbounded
	YearTo    int    // inclusive, 0 = unbounded
	Artists   []string
	FreeWords string // space-separated, all must match title or artist
}

// Filter returns the songs matching every non-empty criterion.
func Filter(list []Song, opt FilterOptions) []Song {
	var out []Song
	for _, s := range list {
		if len(opt.Decades) > 0 {
			matched := false
			for _, d := range opt.Decades {
				if s.Year >= d && s.Year < d+10 {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.YearFrom != 0 && s.Year < opt.YearFrom {
			continue
		}
		if opt.YearTo != 0 && s.Year > opt.YearTo {
			continue
		}
		if len(opt.Artists) > 0 {
			matched := false
			for _, a := range opt.Artists {
				if strings.Contains(strings.ToLower(s.Artist), strings.ToLower(a)) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(s.Title), k) &&
					!strings.Contains(strings.ToLower(s.Artist), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
