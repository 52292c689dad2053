// Package api implements the Spoonacular recipe API client.
//
// The api package provides:
// - Recipe search by ingredients and by cuisine
// - Full recipe detail retrieval including nutrition
// - Typed errors with user-facing messages for API failures
// - Bounded retry for transient upstream errors
package api

// ErrorCode defines error types for API operations
type ErrorCode string

const (
	// ErrRequestFailed represents a network-level failure talking to the API
	ErrRequestFailed ErrorCode = "RequestFailed"
	// ErrUnauthorized represents a rejected API key
	ErrUnauthorized ErrorCode = "Unauthorized"
	// ErrQuotaExceeded represents an exhausted API quota (HTTP 402)
	ErrQuotaExceeded ErrorCode = "QuotaExceeded"
	// ErrUnexpectedStatus represents any other non-2xx response
	ErrUnexpectedStatus ErrorCode = "UnexpectedStatus"
	// ErrRecipeNotFound represents a recipe ID unknown to the API
	ErrRecipeNotFound ErrorCode = "RecipeNotFound"
	// ErrEmptyQuery represents a search invoked without terms
	ErrEmptyQuery ErrorCode = "EmptyQuery"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
