package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

const (
	// DefaultIngredientResults is the result count for ingredient searches
	DefaultIngredientResults = 7
	// DefaultCuisineResults is the result count for cuisine searches
	DefaultCuisineResults = 5
)

// Cuisines lists the cuisines accepted by the complex search endpoint
var Cuisines = []string{
	"Italian", "Chinese", "Mexican", "Indian", "Japanese", "Thai", "French", "Spanish",
}

// MealTypes lists the meal types accepted by the complex search endpoint
var MealTypes = []string{
	"main course", "dessert", "appetizer", "breakfast", "soup",
}

// ValidCuisine reports whether name is a supported cuisine (case-insensitive)
func ValidCuisine(name string) bool {
	return lo.ContainsBy(Cuisines, func(c string) bool {
		return strings.EqualFold(c, name)
	})
}

// ValidMealType reports whether name is a supported meal type (case-insensitive)
func ValidMealType(name string) bool {
	return lo.ContainsBy(MealTypes, func(m string) bool {
		return strings.EqualFold(m, name)
	})
}

// FindByIngredients searches for recipes using the given ingredient list
func (c *Client) FindByIngredients(ctx context.Context, ingredients []string, number int) ([]SearchResult, error) {
	ingredients = lo.FilterMap(ingredients, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	if len(ingredients) == 0 {
		return nil, failure.New(ErrEmptyQuery,
			failure.Message("Ingredient list cannot be empty"),
		)
	}
	if number <= 0 {
		number = DefaultIngredientResults
	}

	query := url.Values{}
	query.Set("ingredients", strings.Join(ingredients, ","))
	query.Set("number", strconv.Itoa(number))

	var results []SearchResult
	if err := c.get(ctx, "/recipes/findByIngredients", query, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// complexSearchResponse wraps the paged complex search payload
type complexSearchResponse struct {
	Results []SearchResult `json:"results"`
}

// ComplexSearch searches for recipes by cuisine and optional meal type
func (c *Client) ComplexSearch(ctx context.Context, cuisine, mealType string, number int) ([]SearchResult, error) {
	if strings.TrimSpace(cuisine) == "" {
		return nil, failure.New(ErrEmptyQuery,
			failure.Message("Cuisine cannot be empty"),
		)
	}
	if number <= 0 {
		number = DefaultCuisineResults
	}

	query := url.Values{}
	query.Set("cuisine", cuisine)
	query.Set("number", strconv.Itoa(number))
	if mealType != "" {
		query.Set("type", mealType)
	}

	var resp complexSearchResponse
	if err := c.get(ctx, "/recipes/complexSearch", query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
