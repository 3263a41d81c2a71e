package ops

import (
	"context"
	"database/sql"

	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/note"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID int64
}

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	note.Note // embedded (copy, not pointer)
}

// Fetch retrieves a note by id.
func Fetch(ctx context.Context, database *sql.DB, input FetchInput) (*FetchOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	n, err := db.GetByID(ctx, database, input.ID)
	if err != nil {
		return nil, err
	}
	return &FetchOutput{Note: *n}, nil
}
