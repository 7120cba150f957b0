package graph

import (
	"fmt"
	"strconv"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// NodeType tags the entity a node stands for.
type NodeType string

// Node types.
const (
	NodeCharacter NodeType = "character"
	NodeFilm      NodeType = "film"
	NodeStarship  NodeType = "starship"
)

// EdgeType tags the relationship an edge expresses.
type EdgeType string

// Edge types.
const (
	EdgeCharacterFilm EdgeType = "character-film"
	EdgeFilmStarship  EdgeType = "film-starship"
)

// Attribute keys carried in NodeData.Attributes.
const (
	AttrGender = "gender"
	AttrHeight = "height"
	AttrMass   = "mass"
	AttrModel  = "model"
)

// ImageBaseURL is the host serving character, film and starship artwork.
const ImageBaseURL = "https://starwars-visualguide.com/assets/img"

// =============================================================================
// Graph
// =============================================================================

// Graph is a positioned node-link diagram of one character.
//
// The JSON form mirrors what node-based diagram libraries consume:
// nodes carry "id", "type", "position" and "data"; edges carry "id",
// "source", "target" and "type".
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Position is a 2D coordinate in diagram space (y grows downward).
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is a positioned entity.
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Type     NodeType `json:"type" yaml:"type"`
	Position Position `json:"position" yaml:"position"`
	Data     NodeData `json:"data" yaml:"data"`
}

// NodeData is the payload a renderer needs to draw a node card without going
// back to the data provider.
type NodeData struct {
	EntityID    int               `json:"entity_id" yaml:"entity_id"`
	Label       string            `json:"label" yaml:"label"`
	ImageKey    string            `json:"image_key" yaml:"image_key"`
	FilmID      int               `json:"film_id,omitempty" yaml:"film_id,omitempty"` // owning film, starships only
	Attributes  map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Placeholder bool              `json:"placeholder,omitempty" yaml:"placeholder,omitempty"` // synthesized for a dangling reference
}

// Edge is a directed relationship between two nodes.
type Edge struct {
	ID     string   `json:"id" yaml:"id"`
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Type   EdgeType `json:"type" yaml:"type"`
}

// =============================================================================
// Identifiers
// =============================================================================

// CharacterID returns the node id of a character. The character URL is used
// when present so ids stay stable across data sources.
func CharacterID(id int, url string) string {
	if url != "" {
		return url
	}
	return "character-" + strconv.Itoa(id)
}

// FilmID returns the node id of a film.
func FilmID(id int) string {
	return "film-" + strconv.Itoa(id)
}

// StarshipID returns the node id of a starship that is not scoped to a film.
func StarshipID(id int) string {
	return "starship-" + strconv.Itoa(id)
}

// ScopedStarshipID returns the node id of a starship attached to one film.
func ScopedStarshipID(filmID, shipID int) string {
	return FilmID(filmID) + "-" + StarshipID(shipID)
}

// EdgeID returns the id of an edge. Both endpoints are encoded, so two edges
// to the same starship from different films never collide.
func EdgeID(source string, typ EdgeType, target string) string {
	return source + ":" + string(typ) + ":" + target
}

// =============================================================================
// Images
// =============================================================================

// ImageKey returns the artwork key for an entity, e.g. "films/4".
func ImageKey(typ NodeType, id int) string {
	return fmt.Sprintf("%ss/%d", typ, id)
}

// ImageURL resolves an image key to an absolute artwork URL.
func ImageURL(key string) string {
	if key == "" {
		return ""
	}
	return ImageBaseURL + "/" + key + ".jpg"
}

// =============================================================================
// Accessors
// =============================================================================

// Node returns the node with the given id.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodesOfType returns the nodes with the given type in graph order.
func (g Graph) NodesOfType(typ NodeType) []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// EdgesOfType returns the edges with the given type in graph order.
func (g Graph) EdgesOfType(typ EdgeType) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// Children returns the target node ids of edges leaving id, in edge order.
func (g Graph) Children(id string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.Source == id {
			out = append(out, e.Target)
		}
	}
	return out
}

// Placeholders returns the nodes synthesized for dangling references.
func (g Graph) Placeholders() []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Data.Placeholder {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks structural integrity: unique node and edge ids, and edges
// whose endpoints exist.
func (g Graph) Validate() error {
	nodes := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node with empty id")
		}
		if _, dup := nodes[n.ID]; dup {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		nodes[n.ID] = struct{}{}
	}

	edges := make(map[string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		if _, dup := edges[e.ID]; dup {
			return fmt.Errorf("duplicate edge id %q", e.ID)
		}
		edges[e.ID] = struct{}{}
		if _, ok := nodes[e.Source]; !ok {
			return fmt.Errorf("edge %q: unknown source %q", e.ID, e.Source)
		}
		if _, ok := nodes[e.Target]; !ok {
			return fmt.Errorf("edge %q: unknown target %q", e.ID, e.Target)
		}
	}
	return nil
}
