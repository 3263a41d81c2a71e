package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hpungsan/notepad/internal/errors"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestInsertNote(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	id, err := InsertNote(ctx, database, "Groceries", "")
	if err != nil {
		t.Fatalf("InsertNote() error = %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want > 0", id)
	}

	n, err := GetByID(ctx, database, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if n.Title != "Groceries" || n.Content != "" {
		t.Errorf("note = %+v, want Groceries/empty", n)
	}
	if n.CreatedAt == 0 || n.UpdatedAt == 0 {
		t.Errorf("timestamps not defaulted: %+v", n)
	}
}

func TestInsertNote_StoresRawText(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	// The draft is stored as typed; trimming only decides emptiness.
	id, err := InsertNote(ctx, database, "  padded  ", "line1\nline2\n")
	if err != nil {
		t.Fatalf("InsertNote() error = %v", err)
	}
	n, err := GetByID(ctx, database, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if n.Title != "  padded  " || n.Content != "line1\nline2\n" {
		t.Errorf("note = %q/%q, want raw text", n.Title, n.Content)
	}
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	id, err := InsertNote(ctx, database, "Old", "X")
	if err != nil {
		t.Fatalf("InsertNote() error = %v", err)
	}

	// Force a stale timestamp to observe the trigger
	if _, err := database.Exec("UPDATE notes SET updated_at = 0 WHERE id = ?", id); err != nil {
		t.Fatalf("reset updated_at: %v", err)
	}

	n, err := UpdateNote(ctx, database, id, "New", "Y")
	if err != nil {
		t.Fatalf("UpdateNote() error = %v", err)
	}
	if n != 1 {
		t.Errorf("rows affected = %d, want 1", n)
	}

	got, err := GetByID(ctx, database, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "New" || got.Content != "Y" {
		t.Errorf("note = %+v, want New/Y", got)
	}
	if got.UpdatedAt == 0 {
		t.Error("updated_at not refreshed by trigger")
	}
}

func TestUpdateNote_MissingRow(t *testing.T) {
	n, err := UpdateNote(context.Background(), setupDB(t), 404, "a", "b")
	if err != nil {
		t.Fatalf("UpdateNote() error = %v", err)
	}
	if n != 0 {
		t.Errorf("rows affected = %d, want 0", n)
	}
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	id, err := InsertNote(ctx, database, "gone", "")
	if err != nil {
		t.Fatalf("InsertNote() error = %v", err)
	}

	n, err := DeleteNote(ctx, database, id)
	if err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}
	if n != 1 {
		t.Errorf("rows affected = %d, want 1", n)
	}

	_, err = GetByID(ctx, database, id)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("GetByID after delete should return ErrNotFound, got: %v", err)
	}
}

func TestStatements_CanceledContext(t *testing.T) {
	database := setupDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := InsertNote(ctx, database, "a", "b"); !errors.Is(err, errors.ErrInternal) {
		t.Errorf("InsertNote(canceled) error = %v, want INTERNAL", err)
	}
}

func TestList_OrderAndPagination(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	var ids []int64
	for _, title := range []string{"a", "b", "c"} {
		id, err := InsertNote(ctx, database, title, "")
		if err != nil {
			t.Fatalf("InsertNote() error = %v", err)
		}
		ids = append(ids, id)
	}
	// Make "a" the most recently updated
	if _, err := database.Exec("UPDATE notes SET updated_at = updated_at + 100 WHERE id = ?", ids[0]); err != nil {
		t.Fatalf("bump updated_at: %v", err)
	}

	notes, total, err := List(ctx, database, 2, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(notes) != 2 {
		t.Fatalf("len(notes) = %d, want 2", len(notes))
	}
	if notes[0].ID != ids[0] {
		t.Errorf("first note = %d, want %d (most recently updated)", notes[0].ID, ids[0])
	}
	// Same updated_at falls back to id DESC
	if notes[1].ID != ids[2] {
		t.Errorf("second note = %d, want %d", notes[1].ID, ids[2])
	}

	notes, _, err = List(ctx, database, 2, 2)
	if err != nil {
		t.Fatalf("List(offset) error = %v", err)
	}
	if len(notes) != 1 || notes[0].ID != ids[1] {
		t.Errorf("page 2 = %+v, want only note %d", notes, ids[1])
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	database := setupDB(t)

	seed := [][2]string{
		{"Groceries", "milk and eggs"},
		{"Work", "quarterly REPORT"},
		{"100% done", "literal percent"},
		{"under_score", ""},
	}
	for _, s := range seed {
		if _, err := InsertNote(ctx, database, s[0], s[1]); err != nil {
			t.Fatalf("InsertNote() error = %v", err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"milk", 1},
		{"report", 1}, // case-insensitive
		{"groc", 1},
		{"%", 1}, // wildcard is escaped
		{"_", 1},
		{"nothing", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			notes, total, err := Search(ctx, database, tt.query, 10, 0)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if total != tt.want || len(notes) != tt.want {
				t.Errorf("Search(%q) = %d/%d results, want %d", tt.query, len(notes), total, tt.want)
			}
		})
	}
}
