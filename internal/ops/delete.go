package ops

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/screen"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID      int64
	Confirm bool // answer to the delete prompt
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Outcome Outcome `json:"outcome"`
	ID      int64   `json:"id"`
}

// Delete opens the note in a screen, requests deletion and answers the prompt
// with Confirm. Declining leaves the note untouched.
func Delete(ctx context.Context, database *sql.DB, logger *slog.Logger, input DeleteInput) (*DeleteOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}
	existing, err := db.GetByID(ctx, database, input.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	host := &Host{Answer: screen.DeclineDelete}
	if input.Confirm {
		host.Answer = screen.ConfirmDelete
	}
	s, session, err := OpenScreen(ctx, database, host, host, logger, screen.Params{Note: existing})
	if err != nil {
		return nil, err
	}
	defer session.Close()

	if err := s.RequestDelete(); err != nil {
		return nil, err
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	out := &DeleteOutput{Outcome: OutcomeKept, ID: input.ID}
	if s.Status() == screen.StatusDeleted {
		out.Outcome = OutcomeDeleted
	}
	return out, nil
}
