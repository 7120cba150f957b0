package layout

import (
	"math"
	"strconv"

	"github.com/matzehuels/holomap/pkg/catalog"
	"github.com/matzehuels/holomap/pkg/graph"
)

const unknown = "Unknown"

// Generate lays out a character, its films and the starships of those films
// as a radial graph. See the package documentation for the geometry.
//
// Inputs are read, never modified. The returned graph is freshly allocated.
func Generate(ch catalog.Character, films []catalog.Film, ships []catalog.Starship, opts ...Option) graph.Graph {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.StarshipScope == "" {
		cfg.StarshipScope = ScopePerFilm
	}

	b := builder{
		cfg:    cfg,
		films:  catalog.NewFilmIndex(films),
		ships:  catalog.IndexStarshipsByFilm(ships),
		placed: make(map[int]string),
	}
	return b.build(ch)
}

type builder struct {
	cfg   Config
	films catalog.FilmIndex
	ships catalog.StarshipIndex

	// placed maps starship ids to node ids under ScopeGlobal.
	placed map[int]string

	out graph.Graph
}

func (b *builder) build(ch catalog.Character) graph.Graph {
	charID := graph.CharacterID(ch.ID, ch.URL)
	b.out.Nodes = append(b.out.Nodes, characterNode(charID, ch, b.cfg))

	filmIDs := ch.UniqueFilmIDs()
	n := len(filmIDs)
	for i, filmID := range filmIDs {
		theta := filmAngle(i, n)
		filmNodeID := graph.FilmID(filmID)

		b.out.Nodes = append(b.out.Nodes, b.filmNode(filmNodeID, filmID, theta))
		b.out.Edges = append(b.out.Edges, edge(charID, graph.EdgeCharacterFilm, filmNodeID))

		b.addStarships(filmNodeID, filmID, theta)
	}

	b.out.Edges = nonNil(b.out.Edges)
	return b.out
}

func (b *builder) addStarships(filmNodeID string, filmID int, theta float64) {
	matches := b.ships.InFilm(filmID)
	m := len(matches)
	if m == 0 {
		return
	}

	for j, ship := range matches {
		if b.cfg.StarshipScope == ScopeGlobal {
			if nodeID, ok := b.placed[ship.ID]; ok {
				b.out.Edges = append(b.out.Edges, edge(filmNodeID, graph.EdgeFilmStarship, nodeID))
				continue
			}
		}

		nodeID := graph.ScopedStarshipID(filmID, ship.ID)
		if b.cfg.StarshipScope == ScopeGlobal {
			nodeID = graph.StarshipID(ship.ID)
			b.placed[ship.ID] = nodeID
		}

		phi := starshipAngle(theta, b.cfg.Arc, j, m)
		b.out.Nodes = append(b.out.Nodes, starshipNode(nodeID, filmID, ship, b.position(b.cfg.StarshipRadius, phi)))
		b.out.Edges = append(b.out.Edges, edge(filmNodeID, graph.EdgeFilmStarship, nodeID))
	}
}

// filmAngle spaces n films around the full circle starting at -π/2.
func filmAngle(i, n int) float64 {
	return 2*math.Pi*float64(i)/float64(n) - math.Pi/2
}

// starshipAngle spreads m ships over arc, centered on theta.
// A single ship sits exactly on theta.
func starshipAngle(theta, arc float64, j, m int) float64 {
	if m == 1 {
		return theta
	}
	return theta - arc/2 + arc*float64(j)/float64(max(m-1, 1))
}

func (b *builder) position(radius, angle float64) graph.Position {
	return graph.Position{
		X: b.cfg.CenterX + radius*math.Cos(angle),
		Y: b.cfg.CenterY + radius*math.Sin(angle),
	}
}

func characterNode(id string, ch catalog.Character, cfg Config) graph.Node {
	label := ch.Name
	if label == "" {
		label = "Unknown Character"
	}
	return graph.Node{
		ID:       id,
		Type:     graph.NodeCharacter,
		Position: graph.Position{X: cfg.CenterX, Y: cfg.CenterY},
		Data: graph.NodeData{
			EntityID: ch.ID,
			Label:    label,
			ImageKey: graph.ImageKey(graph.NodeCharacter, ch.ID),
			Attributes: map[string]string{
				graph.AttrGender: orUnknown(ch.Gender),
				graph.AttrHeight: orUnknown(ch.Height),
				graph.AttrMass:   orUnknown(ch.Mass),
			},
		},
	}
}

func (b *builder) filmNode(id string, filmID int, theta float64) graph.Node {
	data := graph.NodeData{
		EntityID: filmID,
		ImageKey: graph.ImageKey(graph.NodeFilm, filmID),
	}
	if f, ok := b.films.Lookup(filmID); ok && f.Title != "" {
		data.Label = f.Title
	} else {
		data.Label = "Film " + strconv.Itoa(filmID)
		data.Placeholder = true
	}
	return graph.Node{
		ID:       id,
		Type:     graph.NodeFilm,
		Position: b.position(b.cfg.FilmRadius, theta),
		Data:     data,
	}
}

func starshipNode(id string, filmID int, ship catalog.Starship, pos graph.Position) graph.Node {
	data := graph.NodeData{
		EntityID: ship.ID,
		Label:    ship.Name,
		ImageKey: graph.ImageKey(graph.NodeStarship, ship.ID),
		FilmID:   filmID,
	}
	if ship.Name == "" {
		data.Label = "Starship " + strconv.Itoa(ship.ID)
		data.Placeholder = true
	}
	if ship.Model != "" {
		data.Attributes = map[string]string{graph.AttrModel: ship.Model}
	}
	return graph.Node{
		ID:       id,
		Type:     graph.NodeStarship,
		Position: pos,
		Data:     data,
	}
}

func edge(source string, typ graph.EdgeType, target string) graph.Edge {
	return graph.Edge{
		ID:     graph.EdgeID(source, typ, target),
		Source: source,
		Target: target,
		Type:   typ,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func nonNil(e []graph.Edge) []graph.Edge {
	if e == nil {
		return []graph.Edge{}
	}
	return e
}
