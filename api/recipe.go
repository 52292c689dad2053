package api

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// hydrateConcurrency bounds parallel detail fetches so a single search
// does not burn through the API quota in one burst
const hydrateConcurrency = 4

// GetRecipe fetches full details (including nutrition) for one recipe
func (c *Client) GetRecipe(ctx context.Context, id int) (*Recipe, error) {
	query := url.Values{}
	query.Set("includeNutrition", "true")

	var recipe Recipe
	path := fmt.Sprintf("/recipes/%d/information", id)
	if err := c.get(ctx, path, query, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Hydrate resolves search results into full recipes, preserving order.
// Results whose detail fetch fails abort the whole hydration.
func (c *Client) Hydrate(ctx context.Context, results []SearchResult) ([]Recipe, error) {
	recipes := make([]Recipe, len(results))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrateConcurrency)

	for i, r := range results {
		g.Go(func() error {
			recipe, err := c.GetRecipe(ctx, r.ID)
			if err != nil {
				return err
			}
			recipes[i] = *recipe
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recipes, nil
}
