package catalog

// FilmIndex maps film ids to catalog entries.
type FilmIndex map[int]Film

// NewFilmIndex indexes films by id. When the catalog holds the same id twice
// the first entry wins.
func NewFilmIndex(films []Film) FilmIndex {
	idx := make(FilmIndex, len(films))
	for _, f := range films {
		if _, ok := idx[f.ID]; !ok {
			idx[f.ID] = f
		}
	}
	return idx
}

// Lookup returns the film with the given id.
func (idx FilmIndex) Lookup(id int) (Film, bool) {
	f, ok := idx[id]
	return f, ok
}

// StarshipIndex maps a film id to the starships featured in it.
type StarshipIndex map[int][]Starship

// IndexStarshipsByFilm groups starships by the films they appear in.
//
// Each bucket keeps the starship catalog order. A starship listing the same
// film twice is bucketed once, and when the catalog holds the same starship
// id twice the first entry wins.
func IndexStarshipsByFilm(ships []Starship) StarshipIndex {
	idx := make(StarshipIndex)
	indexed := make(map[int]struct{}, len(ships))
	for _, s := range ships {
		if _, dup := indexed[s.ID]; dup {
			continue
		}
		indexed[s.ID] = struct{}{}
		seen := make(map[int]struct{}, len(s.Films))
		for _, filmID := range s.Films {
			if _, dup := seen[filmID]; dup {
				continue
			}
			seen[filmID] = struct{}{}
			idx[filmID] = append(idx[filmID], s)
		}
	}
	return idx
}

// InFilm returns the starships featured in the given film, in catalog order.
func (idx StarshipIndex) InFilm(filmID int) []Starship {
	return idx[filmID]
}
