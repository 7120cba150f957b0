package pipeline

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/holomap/pkg/catalog"
	herrors "github.com/matzehuels/holomap/pkg/errors"
	"github.com/matzehuels/holomap/pkg/integrations"
)

// Provider supplies characters and catalogs. The SWAPI client implements it.
type Provider interface {
	Character(ctx context.Context, id int, refresh bool) (catalog.Character, error)
	Characters(ctx context.Context, page int, refresh bool) (catalog.Page[catalog.Character], error)
	Films(ctx context.Context, refresh bool) ([]catalog.Film, error)
	Starships(ctx context.Context, refresh bool) ([]catalog.Starship, error)
}

// Input is everything the layout stage needs.
type Input struct {
	Character catalog.Character
	Films     []catalog.Film
	Starships []catalog.Starship
	Warnings  []string
}

// Fetch loads the character and both catalogs concurrently.
//
// A character failure is returned as an error and cancels the catalog
// requests. Catalog failures degrade to empty catalogs and are recorded in
// Input.Warnings.
func Fetch(ctx context.Context, p Provider, characterID int, refresh bool) (Input, error) {
	var (
		in       Input
		filmWarn string
		shipWarn string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ch, err := p.Character(gctx, characterID, refresh)
		if err != nil {
			return classify(err, "fetch character %d", characterID)
		}
		in.Character = ch
		return nil
	})
	g.Go(func() error {
		films, err := p.Films(gctx, refresh)
		if err != nil {
			filmWarn = "film catalog unavailable: " + err.Error()
			films = []catalog.Film{}
		}
		in.Films = films
		return nil
	})
	g.Go(func() error {
		ships, err := p.Starships(gctx, refresh)
		if err != nil {
			shipWarn = "starship catalog unavailable: " + err.Error()
			ships = []catalog.Starship{}
		}
		in.Starships = ships
		return nil
	})

	if err := g.Wait(); err != nil {
		return Input{}, err
	}
	for _, w := range []string{filmWarn, shipWarn} {
		if w != "" {
			in.Warnings = append(in.Warnings, w)
		}
	}
	return in, nil
}

// Characters returns one page of the character collection.
func Characters(ctx context.Context, p Provider, page int, refresh bool) (catalog.Page[catalog.Character], error) {
	if err := herrors.ValidatePage(page); err != nil {
		return catalog.Page[catalog.Character]{}, err
	}
	res, err := p.Characters(ctx, page, refresh)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return res, herrors.Wrap(herrors.ErrCodeNotFound, err, "page %d does not exist", page)
		}
		return res, classify(err, "fetch character page %d", page)
	}
	return res, nil
}

// classify attaches an error code to a provider error.
func classify(err error, format string, args ...any) error {
	var code herrors.Code
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		code = herrors.ErrCodeCharacterNotFound
	case errors.Is(err, integrations.ErrRateLimited):
		code = herrors.ErrCodeRateLimited
	case errors.Is(err, context.DeadlineExceeded):
		code = herrors.ErrCodeTimeout
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, integrations.ErrNetwork):
		code = herrors.ErrCodeNetwork
	default:
		code = herrors.ErrCodeInternal
	}
	return herrors.Wrap(code, err, format, args...)
}
