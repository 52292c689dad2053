package api

// Recipe is the full recipe record returned by the information endpoint.
// Field names follow the Spoonacular wire format.
type Recipe struct {
	ID                  int          `json:"id"`
	Title               string       `json:"title"`
	Image               string       `json:"image,omitempty"`
	Summary             string       `json:"summary,omitempty"`
	Instructions        string       `json:"instructions,omitempty"`
	SourceName          string       `json:"sourceName,omitempty"`
	SourceURL           string       `json:"sourceUrl,omitempty"`
	ReadyInMinutes      int          `json:"readyInMinutes,omitempty"`
	Servings            int          `json:"servings,omitempty"`
	AggregateLikes      int          `json:"aggregateLikes,omitempty"`
	Cuisines            []string     `json:"cuisines,omitempty"`
	ExtendedIngredients []Ingredient `json:"extendedIngredients,omitempty"`
	Nutrition           *Nutrition   `json:"nutrition,omitempty"`
}

// Ingredient is a single entry of a recipe's ingredient list
type Ingredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit,omitempty"`
	Original string  `json:"original,omitempty"`
}

// Nutrition carries the nutrient breakdown of a recipe
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Nutrient is one measured nutrient (e.g. Calories, Protein)
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// SearchResult is the summary record returned by the search endpoints.
// Only the ID is guaranteed; the detail endpoint fills in the rest.
type SearchResult struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	Image               string `json:"image,omitempty"`
	Likes               int    `json:"likes,omitempty"`
	UsedIngredientCount int    `json:"usedIngredientCount,omitempty"`
	MissedIngredients   int    `json:"missedIngredientCount,omitempty"`
}

// IngredientCount returns the number of listed ingredients
func (r Recipe) IngredientCount() int {
	return len(r.ExtendedIngredients)
}

// Nutrient looks up a nutrient by name; ok is false when absent
func (n *Nutrition) Nutrient(name string) (Nutrient, bool) {
	if n == nil {
		return Nutrient{}, false
	}
	for _, nu := range n.Nutrients {
		if nu.Name == name {
			return nu, true
		}
	}
	return Nutrient{}, false
}
