package fixture

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ccollicutt/fixtures/pkg/resolver"
)

// LoadAll opens each named fixture concurrently and returns them in the
// order of names. Every returned Fixture is independent of the others.
// The first failure cancels the remaining resolutions.
func LoadAll(ctx context.Context, r resolver.Resolver, names ...string) ([]*Fixture, error) {
	fixtures := make([]*Fixture, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			f, err := Open(ctx, r, name)
			if err != nil {
				return err
			}
			fixtures[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fixtures, nil
}
