package ops

import (
	"context"
	"database/sql"

	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/note"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Limit  int // default: 20, max: 100
	Offset int // default: 0
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []note.Summary `json:"items"`
	Pagination Pagination     `json:"pagination"`
	Sort       string         `json:"sort"`
}

// List retrieves note summaries, most recently updated first.
func List(ctx context.Context, database *sql.DB, input ListInput) (*ListOutput, error) {
	limit, offset := page(input.Limit, input.Offset)

	notes, total, err := db.List(ctx, database, limit, offset)
	if err != nil {
		return nil, err
	}

	return &ListOutput{
		Items:      summarize(notes),
		Pagination: Pagination{Limit: limit, Offset: offset, HasMore: offset+len(notes) < total, Total: total},
		Sort:       "updated_at_desc",
	}, nil
}

// summarize projects notes to summaries, never returning nil.
func summarize(notes []note.Note) []note.Summary {
	items := make([]note.Summary, 0, len(notes))
	for i := range notes {
		items = append(items, notes[i].ToSummary())
	}
	return items
}
