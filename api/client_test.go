package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key"), srv
}

func TestFindByIngredients(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes/findByIngredients" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("ingredients"); got != "chicken,rice" {
			t.Errorf("ingredients = %q, want %q", got, "chicken,rice")
		}
		if got := r.URL.Query().Get("apiKey"); got != "test-key" {
			t.Errorf("apiKey = %q, want %q", got, "test-key")
		}
		if got := r.URL.Query().Get("number"); got != "7" {
			t.Errorf("number = %q, want %q", got, "7")
		}
		fmt.Fprint(w, `[{"id":101,"title":"Chicken Rice","usedIngredientCount":2,"missedIngredientCount":3}]`)
	}))

	got, err := client.FindByIngredients(context.Background(), []string{" chicken ", "rice", ""}, 0)
	if err != nil {
		t.Fatalf("FindByIngredients() error = %v", err)
	}

	want := []SearchResult{
		{ID: 101, Title: "Chicken Rice", UsedIngredientCount: 2, MissedIngredients: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindByIngredients() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindByIngredientsEmpty(t *testing.T) {
	client := NewClient("http://example.invalid", "test-key")

	_, err := client.FindByIngredients(context.Background(), []string{"  ", ""}, 7)
	if err == nil {
		t.Fatal("FindByIngredients() expected error, got nil")
	}
	if !failure.Is(err, ErrEmptyQuery) {
		t.Errorf("error = %v, want code %v", err, ErrEmptyQuery)
	}
}

func TestComplexSearch(t *testing.T) {
	tests := []struct {
		name     string
		cuisine  string
		mealType string
		wantType string
	}{
		{name: "cuisine only", cuisine: "italian", wantType: ""},
		{name: "cuisine and meal type", cuisine: "italian", mealType: "dessert", wantType: "dessert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/recipes/complexSearch" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				if got := r.URL.Query().Get("type"); got != tt.wantType {
					t.Errorf("type = %q, want %q", got, tt.wantType)
				}
				fmt.Fprint(w, `{"results":[{"id":7,"title":"Tiramisu"}]}`)
			}))

			got, err := client.ComplexSearch(context.Background(), tt.cuisine, tt.mealType, 5)
			if err != nil {
				t.Fatalf("ComplexSearch() error = %v", err)
			}
			if len(got) != 1 || got[0].Title != "Tiramisu" {
				t.Errorf("ComplexSearch() = %+v", got)
			}
		})
	}
}

func TestGetRecipe(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes/42/information" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("includeNutrition"); got != "true" {
			t.Errorf("includeNutrition = %q, want true", got)
		}
		fmt.Fprint(w, `{
			"id": 42,
			"title": "Pasta",
			"readyInMinutes": 25,
			"servings": 4,
			"sourceUrl": "https://example.com/pasta",
			"cuisines": ["Italian"],
			"extendedIngredients": [{"name":"spaghetti","amount":500,"unit":"g"}],
			"nutrition": {"nutrients":[{"name":"Calories","amount":420,"unit":"kcal"}]}
		}`)
	}))

	got, err := client.GetRecipe(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetRecipe() error = %v", err)
	}
	if got.Title != "Pasta" || got.ReadyInMinutes != 25 {
		t.Errorf("GetRecipe() = %+v", got)
	}
	if n, ok := got.Nutrition.Nutrient("Calories"); !ok || n.Amount != 420 {
		t.Errorf("Nutrient(Calories) = %+v, %v", n, ok)
	}
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode ErrorCode
	}{
		{name: "bad key", status: http.StatusUnauthorized, wantCode: ErrUnauthorized},
		{name: "quota exhausted", status: http.StatusPaymentRequired, wantCode: ErrQuotaExceeded},
		{name: "missing recipe", status: http.StatusNotFound, wantCode: ErrRecipeNotFound},
		{name: "client error", status: http.StatusBadRequest, wantCode: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := client.GetRecipe(context.Background(), 1)
			if err == nil {
				t.Fatal("GetRecipe() expected error, got nil")
			}
			if !failure.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestTransientRetry(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"id":1,"title":"Soup"}`)
	}))

	got, err := client.GetRecipe(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetRecipe() error = %v", err)
	}
	if got.Title != "Soup" {
		t.Errorf("GetRecipe() title = %q", got.Title)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server calls = %d, want 2", n)
	}
}

func TestHydrate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/recipes/%d/information", &id); err != nil {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprintf(w, `{"id":%d,"title":"Recipe %d"}`, id, id)
	}))

	results := []SearchResult{{ID: 3}, {ID: 1}, {ID: 2}}
	got, err := client.Hydrate(context.Background(), results)
	if err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}

	wantTitles := []string{"Recipe 3", "Recipe 1", "Recipe 2"}
	for i, r := range got {
		if r.Title != wantTitles[i] {
			t.Errorf("Hydrate()[%d].Title = %q, want %q", i, r.Title, wantTitles[i])
		}
	}
}

func TestValidCuisine(t *testing.T) {
	if !ValidCuisine("italian") {
		t.Error("ValidCuisine(italian) = false")
	}
	if ValidCuisine("klingon") {
		t.Error("ValidCuisine(klingon) = true")
	}
	if !ValidMealType("Main Course") {
		t.Error("ValidMealType(Main Course) = false")
	}
}
