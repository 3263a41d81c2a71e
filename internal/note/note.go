package note

import (
	"strings"
	"unicode/utf8"
)

// Note is a persisted title/content record identified by an integer key.
type Note struct {
	// ID is the SQLite rowid; zero means the note has not been persisted.
	ID int64 `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// CreatedAt and UpdatedAt are Unix timestamps maintained by the schema.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Draft is the transient, unsaved copy of a note's fields owned by a screen.
type Draft struct {
	Title   string
	Content string
}

// NewDraft seeds a draft from n, or returns an empty draft when n is nil.
func NewDraft(n *Note) Draft {
	if n == nil {
		return Draft{}
	}
	return Draft{Title: n.Title, Content: n.Content}
}

// Empty reports whether both fields are blank after trimming.
// Empty drafts are never persisted.
func (d Draft) Empty() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// DisplayTitle returns the title, or the first content line when the title is blank.
func (n *Note) DisplayTitle() string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	line, _, _ := strings.Cut(strings.TrimSpace(n.Content), "\n")
	if line = strings.TrimSpace(line); line != "" {
		return Truncate(line, 60)
	}
	return "(untitled)"
}

// Truncate shortens s to at most max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
