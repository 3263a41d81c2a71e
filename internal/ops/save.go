package ops

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/note"
	"github.com/hpungsan/notepad/internal/screen"
)

// Outcome is how a headless screen session ended.
type Outcome string

const (
	OutcomeSaved     Outcome = "saved"
	OutcomeDiscarded Outcome = "discarded"
	OutcomeDeleted   Outcome = "deleted"
	OutcomeKept      Outcome = "kept"
)

// SaveInput contains parameters for the Save operation.
type SaveInput struct {
	ID      int64 // 0 creates a new note
	Title   string
	Content string
}

// SaveOutput contains the result of the Save operation.
type SaveOutput struct {
	Outcome Outcome    `json:"outcome"`
	ID      int64      `json:"id,omitempty"`
	Note    *note.Note `json:"note,omitempty"`
}

// Save drives a note screen with the given draft and presses save.
// A draft with blank title and content is discarded without touching the database,
// including when it targets an existing note.
func Save(ctx context.Context, database *sql.DB, logger *slog.Logger, input SaveInput) (*SaveOutput, error) {
	var existing *note.Note
	if input.ID != 0 {
		if err := validateID(input.ID); err != nil {
			return nil, err
		}
		n, err := db.GetByID(ctx, database, input.ID)
		if err != nil {
			return nil, err
		}
		existing = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	host := &Host{}
	s, session, err := OpenScreen(ctx, database, host, host, logger, screen.Params{Note: existing})
	if err != nil {
		return nil, err
	}
	defer session.Close()

	s.SetTitle(input.Title)
	s.SetContent(input.Content)
	if err := s.Save(ctx); err != nil {
		return nil, err
	}

	if s.Status() == screen.StatusDiscarded {
		return &SaveOutput{Outcome: OutcomeDiscarded, ID: input.ID}, nil
	}

	saved, err := session.Get(ctx, s.NoteID())
	if err != nil {
		return nil, err
	}
	return &SaveOutput{Outcome: OutcomeSaved, ID: saved.ID, Note: saved}, nil
}
