package note

import "strings"

// PreviewChars is the maximum rune length of a summary preview.
const PreviewChars = 120

// Summary represents a note's metadata with a shortened content preview.
// Used for list and search views to reduce data transfer.
type Summary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Preview   string `json:"preview"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// ToSummary converts a Note to a Summary by collapsing and truncating the content.
func (n *Note) ToSummary() Summary {
	return Summary{
		ID:        n.ID,
		Title:     n.DisplayTitle(),
		Preview:   Truncate(strings.Join(strings.Fields(n.Content), " "), PreviewChars),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
