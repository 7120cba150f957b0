package catalog

// Character is a person from the SWAPI /people collection.
//
// Films lists film ids in the order the API returns them. Scalar attributes
// are kept as strings because the API uses values like "unknown" and "1,358".
type Character struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Height    string `json:"height,omitempty" yaml:"height,omitempty"`
	Mass      string `json:"mass,omitempty" yaml:"mass,omitempty"`
	HairColor string `json:"hair_color,omitempty" yaml:"hair_color,omitempty"`
	SkinColor string `json:"skin_color,omitempty" yaml:"skin_color,omitempty"`
	EyeColor  string `json:"eye_color,omitempty" yaml:"eye_color,omitempty"`
	BirthYear string `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	Gender    string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Homeworld int    `json:"homeworld,omitempty" yaml:"homeworld,omitempty"`
	Films     []int  `json:"films" yaml:"films"`
	Species   []int  `json:"species,omitempty" yaml:"species,omitempty"`
	Vehicles  []int  `json:"vehicles,omitempty" yaml:"vehicles,omitempty"`
	Starships []int  `json:"starships,omitempty" yaml:"starships,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Film is an entry of the SWAPI /films collection.
type Film struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	EpisodeID int    `json:"episode_id,omitempty" yaml:"episode_id,omitempty"`
}

// Starship is an entry of the SWAPI /starships collection.
type Starship struct {
	ID            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Model         string `json:"model,omitempty" yaml:"model,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	CostInCredits string `json:"cost_in_credits,omitempty" yaml:"cost_in_credits,omitempty"`
	Length        string `json:"length,omitempty" yaml:"length,omitempty"`
	Crew          string `json:"crew,omitempty" yaml:"crew,omitempty"`
	Passengers    string `json:"passengers,omitempty" yaml:"passengers,omitempty"`
	CargoCapacity string `json:"cargo_capacity,omitempty" yaml:"cargo_capacity,omitempty"`
	Films         []int  `json:"films" yaml:"films"`
	Pilots        []int  `json:"pilots,omitempty" yaml:"pilots,omitempty"`
	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
}

// AppearsIn reports whether the starship is featured in the given film.
func (s Starship) AppearsIn(filmID int) bool {
	for _, id := range s.Films {
		if id == filmID {
			return true
		}
	}
	return false
}

// Page is one page of a paginated SWAPI collection.
// Next and Previous are absolute URLs, empty at the ends of the collection.
type Page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []T    `json:"results"`
}

// HasNext reports whether another page follows this one.
func (p Page[T]) HasNext() bool { return p.Next != "" }

// UniqueFilmIDs returns the character's film ids with repeats removed.
// The first occurrence of each id keeps its position.
func (c Character) UniqueFilmIDs() []int {
	seen := make(map[int]struct{}, len(c.Films))
	out := make([]int, 0, len(c.Films))
	for _, id := range c.Films {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
