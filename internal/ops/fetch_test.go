package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/notepad/internal/errors"
)

func TestFetch(t *testing.T) {
	database := setupDB(t)
	id := seedNote(t, database, "Old", "X")

	output, err := Fetch(context.Background(), database, FetchInput{ID: id})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if output.ID != id || output.Title != "Old" || output.Content != "X" {
		t.Errorf("Fetch = %+v, want note %d Old/X", output.Note, id)
	}
}

func TestFetch_NotFound(t *testing.T) {
	_, err := Fetch(context.Background(), setupDB(t), FetchInput{ID: 999})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Fetch(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestFetch_InvalidID(t *testing.T) {
	_, err := Fetch(context.Background(), setupDB(t), FetchInput{ID: 0})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("Fetch(0) error = %v, want INVALID_REQUEST", err)
	}
}
