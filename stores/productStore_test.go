package stores

import (
	"context"
	"testing"
	"time"

	"github.com/sarose/kinmel-api/models"
)

// A blank query must short-circuit before any store round-trip: the zero-value
// store has no collection, so reaching the driver would panic.
func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	store := &ProductStore{}

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := store.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("Search(%q) returned error: %v", query, err)
		}
		if len(results) != 0 {
			t.Fatalf("Search(%q) returned %d results, want 0", query, len(results))
		}
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	db := testDB(t)
	store := NewProductStore(db, 5*time.Second)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Product{
		Brand:       "Goldstar",
		Name:        "running shoe",
		Description: "Lightweight trail runner",
		Price:       4500,
		Category:    "footwear",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("matches name regardless of case", func(t *testing.T) {
		results, err := store.Search(ctx, "SHOE")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		found := false
		for _, p := range results {
			if p.ID == created.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q to match product named %q", "SHOE", created.Name)
		}
	})

	t.Run("matches description", func(t *testing.T) {
		results, err := store.Search(ctx, "trail RUNNER")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		found := false
		for _, p := range results {
			if p.ID == created.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected description match for %q", "trail RUNNER")
		}
	})
}

func TestSearchResultCap(t *testing.T) {
	db := testDB(t)
	store := NewProductStore(db, 5*time.Second)
	ctx := context.Background()

	for i := 0; i < searchResultCap+5; i++ {
		_, err := store.Create(ctx, models.Product{
			Brand:       "CapCo",
			Name:        "capped-widget",
			Description: "widget",
			Price:       100,
			Category:    "widgets",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	results, err := store.Search(ctx, "capped-widget")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) > searchResultCap {
		t.Fatalf("expected at most %d results, got %d", searchResultCap, len(results))
	}
}
