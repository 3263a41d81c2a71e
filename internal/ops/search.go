package ops

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/errors"
)

// MaxQueryLength bounds the search query in runes.
const MaxQueryLength = db.MaxSearchQueryChars

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	Query  string // required
	Limit  int    // default: 20, max: 100
	Offset int    // default: 0
}

// Search finds notes whose title or content contains the query, most recently
// updated first. Matching is case-insensitive for ASCII.
func Search(ctx context.Context, database *sql.DB, input SearchInput) (*ListOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("query exceeds maximum length of %d characters", MaxQueryLength))
	}

	limit, offset := page(input.Limit, input.Offset)

	notes, total, err := db.Search(ctx, database, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return &ListOutput{
		Items:      summarize(notes),
		Pagination: Pagination{Limit: limit, Offset: offset, HasMore: offset+len(notes) < total, Total: total},
		Sort:       "updated_at_desc",
	}, nil
}
