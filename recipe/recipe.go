// Package recipe provides presentation helpers for recipe data:
// difficulty grading, nutrition summaries, and ingredient amount formatting.
package recipe

import (
	"fmt"
	"math"
	"sort"

	"github.com/ajikko/aji/api"
)

// Difficulty grades how demanding a recipe is to cook
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// rank orders difficulties for sorting, easiest first
func (d Difficulty) rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	default:
		return 2
	}
}

// Grade derives the difficulty from cooking time and ingredient count
func Grade(r api.Recipe) Difficulty {
	minutes := r.ReadyInMinutes
	ingredients := r.IngredientCount()

	switch {
	case minutes > 60 || ingredients > 15:
		return DifficultyHard
	case minutes > 30 || ingredients > 10:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// SortByDifficulty orders recipes easiest first, in place
func SortByDifficulty(recipes []api.Recipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		return Grade(recipes[i]).rank() < Grade(recipes[j]).rank()
	})
}

// HealthSummary condenses a recipe's nutrition into a few headline facts
type HealthSummary struct {
	Calories string
	Metrics  []string
	Score    int
}

// Summarize builds a HealthSummary from the nutrient breakdown.
// ok is false when the recipe carries no nutrition data.
func Summarize(r api.Recipe) (HealthSummary, bool) {
	if r.Nutrition == nil {
		return HealthSummary{}, false
	}

	calories, _ := r.Nutrition.Nutrient("Calories")
	protein, _ := r.Nutrition.Nutrient("Protein")
	sodium, _ := r.Nutrition.Nutrient("Sodium")
	vitaminA, _ := r.Nutrition.Nutrient("Vitamin A")

	var metrics []string
	if protein.Amount > 25 {
		metrics = append(metrics, "High in Protein")
	}
	if vitaminA.Amount > 20 {
		metrics = append(metrics, "Good source of Vitamin A")
	}
	if sodium.Amount > 1000 {
		metrics = append(metrics, "High in Sodium")
	}

	score := 50
	if protein.Amount > 25 {
		score += 15
	}
	if vitaminA.Amount > 20 {
		score += 15
	}
	if sodium.Amount < 500 {
		score += 20
	}
	if calories.Amount < 500 {
		score += 10
	}
	if score > 100 {
		score = 100
	}

	return HealthSummary{
		Calories: fmt.Sprintf("%g %s", calories.Amount, calories.Unit),
		Metrics:  metrics,
		Score:    score,
	}, true
}

// maxDenominator bounds fraction approximation of ingredient amounts
const maxDenominator = 1000000

// FormatAmount renders a numeric amount as an integer or a fraction
// ("0.5" -> "1/2", "1.5" -> "3/2"), which reads better in ingredient lists
func FormatAmount(amount float64) string {
	if amount == 0 {
		return ""
	}
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("%d", int64(amount))
	}

	num, den := limitDenominator(amount, maxDenominator)
	if den == 1 {
		return fmt.Sprintf("%d", num)
	}
	return fmt.Sprintf("%d/%d", num, den)
}

// limitDenominator finds the closest fraction to x with denominator <= maxDen
// using continued fraction convergents
func limitDenominator(x float64, maxDen int64) (int64, int64) {
	neg := x < 0
	if neg {
		x = -x
	}

	// convergents p/q of the continued fraction expansion
	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	rem := x
	for range 64 {
		a := int64(math.Floor(rem))
		q2 := q0 + a*q1
		if q2 > maxDen {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, q2

		frac := rem - math.Floor(rem)
		if frac < 1e-12 {
			break
		}
		rem = 1 / frac
	}

	// pick the better of the last two convergents
	k := (maxDen - q0) / q1
	b1 := float64(p0+k*p1) / float64(q0+k*q1)
	b2 := float64(p1) / float64(q1)
	num, den := p1, q1
	if math.Abs(b1-x) < math.Abs(b2-x) {
		num, den = p0+k*p1, q0+k*q1
	}

	if neg {
		num = -num
	}
	return num, den
}
