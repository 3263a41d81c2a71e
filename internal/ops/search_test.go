package ops

import (
	"context"
	"strings"
	"testing"

	"github.com/hpungsan/notepad/internal/errors"
)

func TestSearch_Matches(t *testing.T) {
	database := setupDB(t)
	seedNote(t, database, "Groceries", "milk")
	seedNote(t, database, "Work", "ship the milkshake machine")
	seedNote(t, database, "Books", "")

	output, err := Search(context.Background(), database, SearchInput{Query: "  MILK "})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if output.Pagination.Total != 2 || len(output.Items) != 2 {
		t.Errorf("Search = %d/%d results, want 2", len(output.Items), output.Pagination.Total)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	database := setupDB(t)
	seedNote(t, database, "Groceries", "milk")

	output, err := Search(context.Background(), database, SearchInput{Query: "bread"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if output.Items == nil || len(output.Items) != 0 {
		t.Errorf("Items = %v, want empty slice", output.Items)
	}
}

func TestSearch_InvalidQuery(t *testing.T) {
	database := setupDB(t)

	for _, q := range []string{"", "   ", strings.Repeat("a", MaxQueryLength+1)} {
		_, err := Search(context.Background(), database, SearchInput{Query: q})
		if !errors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("Search(%d chars) error = %v, want INVALID_REQUEST", len(q), err)
		}
	}
}
