package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/notepad/internal/errors"
)

func TestSave_CreatesNote(t *testing.T) {
	database := setupDB(t)

	out, err := Save(context.Background(), database, nil, SaveInput{Title: "Groceries"})
	require.NoError(t, err)
	require.Equal(t, OutcomeSaved, out.Outcome)
	require.Positive(t, out.ID)
	require.NotNil(t, out.Note)
	require.Equal(t, "Groceries", out.Note.Title)
	require.Equal(t, "", out.Note.Content)
	require.Equal(t, 1, countNotes(t, database))
}

func TestSave_UpdatesNote(t *testing.T) {
	database := setupDB(t)
	id := seedNote(t, database, "Old", "X")

	out, err := Save(context.Background(), database, nil, SaveInput{ID: id, Title: "New", Content: "Y"})
	require.NoError(t, err)
	require.Equal(t, OutcomeSaved, out.Outcome)
	require.Equal(t, id, out.ID)
	require.Equal(t, "New", out.Note.Title)
	require.Equal(t, "Y", out.Note.Content)
	require.Equal(t, 1, countNotes(t, database))
}

func TestSave_BlankDraftIsDiscarded(t *testing.T) {
	database := setupDB(t)
	id := seedNote(t, database, "Old", "X")

	out, err := Save(context.Background(), database, nil, SaveInput{Title: "  ", Content: "\n"})
	require.NoError(t, err)
	require.Equal(t, OutcomeDiscarded, out.Outcome)
	require.Zero(t, out.ID)
	require.Equal(t, 1, countNotes(t, database))

	// Clearing an existing note leaves the stored row untouched.
	out, err = Save(context.Background(), database, nil, SaveInput{ID: id})
	require.NoError(t, err)
	require.Equal(t, OutcomeDiscarded, out.Outcome)
	require.Equal(t, id, out.ID)

	got, err := Fetch(context.Background(), database, FetchInput{ID: id})
	require.NoError(t, err)
	require.Equal(t, "Old", got.Title)
	require.Equal(t, "X", got.Content)
}

func TestSave_MissingNote(t *testing.T) {
	database := setupDB(t)

	_, err := Save(context.Background(), database, nil, SaveInput{ID: 42, Title: "x"})
	require.True(t, errors.Is(err, errors.ErrNotFound), "got %v", err)
	require.Zero(t, countNotes(t, database))

	_, err = Save(context.Background(), database, nil, SaveInput{ID: -1, Title: "x"})
	require.True(t, errors.Is(err, errors.ErrInvalidRequest), "got %v", err)
}

func TestSave_ReleasesSession(t *testing.T) {
	database := setupDB(t)

	_, err := Save(context.Background(), database, nil, SaveInput{Title: "a"})
	require.NoError(t, err)
	require.Zero(t, database.Stats().InUse)
}
