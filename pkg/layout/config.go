package layout

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// StarshipScope selects how starships shared between films are drawn.
type StarshipScope string

const (
	// ScopePerFilm draws one starship node per (film, starship) pair.
	ScopePerFilm StarshipScope = "per-film"
	// ScopeGlobal draws one node per starship with an edge from every film.
	ScopeGlobal StarshipScope = "global"
)

// Defaults match the proportions of the original diagram.
const (
	DefaultCenterX        = 400.0
	DefaultCenterY        = 300.0
	DefaultFilmRadius     = 350.0
	DefaultStarshipRadius = 800.0
	DefaultArc            = math.Pi / 4
	DefaultNodeRadius     = 120.0
)

// Config holds the geometry of the radial layout.
type Config struct {
	CenterX        float64       `json:"center_x" toml:"center_x"`
	CenterY        float64       `json:"center_y" toml:"center_y"`
	FilmRadius     float64       `json:"film_radius" toml:"film_radius" validate:"gt=0"`
	StarshipRadius float64       `json:"starship_radius" toml:"starship_radius" validate:"gtfield=FilmRadius"`
	Arc            float64       `json:"arc" toml:"arc" validate:"gt=0,lte=6.283185307179586"`
	NodeRadius     float64       `json:"node_radius" toml:"node_radius" validate:"gte=0"`
	StarshipScope  StarshipScope `json:"starship_scope" toml:"starship_scope" validate:"oneof=per-film global"`
}

// DefaultConfig returns the default layout geometry.
func DefaultConfig() Config {
	return Config{
		CenterX:        DefaultCenterX,
		CenterY:        DefaultCenterY,
		FilmRadius:     DefaultFilmRadius,
		StarshipRadius: DefaultStarshipRadius,
		Arc:            DefaultArc,
		NodeRadius:     DefaultNodeRadius,
		StarshipScope:  ScopePerFilm,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(ringGapValidation, Config{})
	return v
}

// ringGapValidation rejects configs whose rings are closer than a node.
func ringGapValidation(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if c.StarshipRadius-c.FilmRadius <= c.NodeRadius {
		sl.ReportError(c.StarshipRadius, "StarshipRadius", "StarshipRadius", "ringgap", "")
	}
}

// Validate reports whether the geometry is usable: positive radii, a
// starship ring farther out than the film ring by more than one node radius,
// and an arc within (0, 2π].
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid layout config: %w", err)
	}
	return nil
}

// Option adjusts the layout configuration of a single Generate call.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option { return func(cfg *Config) { *cfg = c } }

// WithCenter moves the character node.
func WithCenter(x, y float64) Option {
	return func(c *Config) { c.CenterX, c.CenterY = x, y }
}

// WithFilmRadius sets the radius of the film ring.
func WithFilmRadius(r float64) Option { return func(c *Config) { c.FilmRadius = r } }

// WithStarshipRadius sets the radius of the starship ring.
func WithStarshipRadius(r float64) Option { return func(c *Config) { c.StarshipRadius = r } }

// WithArc sets the angular width, in radians, of each film's starship fan.
func WithArc(a float64) Option { return func(c *Config) { c.Arc = a } }

// WithStarshipScope selects per-film or global starship nodes.
func WithStarshipScope(s StarshipScope) Option { return func(c *Config) { c.StarshipScope = s } }
