package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidRecipeID  ErrorCode = "InvalidRecipeID"
	InvalidCuisine   ErrorCode = "InvalidCuisine"
	InvalidMealType  ErrorCode = "InvalidMealType"
	NoRecipesFound   ErrorCode = "NoRecipesFound"
	InvalidArguments ErrorCode = "InvalidArguments"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
