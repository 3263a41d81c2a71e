package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hpungsan/notepad/internal/errors"
	"github.com/hpungsan/notepad/internal/note"
)

// The three statements issued by the note screen, verbatim.
const (
	UpdateNoteSQL = "UPDATE notes SET title = ?, content = ? WHERE id = ?"
	InsertNoteSQL = "INSERT INTO notes (title, content) VALUES (?, ?)"
	DeleteNoteSQL = "DELETE FROM notes WHERE id = ?"
)

const selectNoteColumns = `SELECT id, title, content, created_at, updated_at FROM notes`

// MaxSearchQueryChars bounds the length of a search query.
const MaxSearchQueryChars = 200

// Beginner starts transactions. Satisfied by *sql.DB and *sql.Conn.
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Querier runs read queries. Satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// execOne runs a single statement inside its own transaction.
func execOne(ctx context.Context, b Beginner, query string, args ...any) (sql.Result, error) {
	tx, err := b.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// InsertNote inserts a new note row and returns its id.
func InsertNote(ctx context.Context, b Beginner, title, content string) (int64, error) {
	result, err := execOne(ctx, b, InsertNoteSQL, title, content)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return id, nil
}

// UpdateNote overwrites the title and content of the row with the given id.
// It returns the number of rows affected; zero is not an error.
func UpdateNote(ctx context.Context, b Beginner, id int64, title, content string) (int64, error) {
	result, err := execOne(ctx, b, UpdateNoteSQL, title, content, id)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return rowsAffected(result)
}

// DeleteNote removes the row with the given id.
// It returns the number of rows affected; zero is not an error.
func DeleteNote(ctx context.Context, b Beginner, id int64) (int64, error) {
	result, err := execOne(ctx, b, DeleteNoteSQL, id)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return rowsAffected(result)
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return n, nil
}

// GetByID retrieves a note by id.
func GetByID(ctx context.Context, q Querier, id int64) (*note.Note, error) {
	row := q.QueryRowContext(ctx, selectNoteColumns+" WHERE id = ?", id)
	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return n, nil
}

// List returns notes ordered by most recently updated, and the total row count.
func List(ctx context.Context, q Querier, limit, offset int) ([]note.Note, int, error) {
	var total int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&total); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	rows, err := q.QueryContext(ctx,
		selectNoteColumns+" ORDER BY updated_at DESC, id DESC LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	defer rows.Close()

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// Search returns notes whose title or content contains query (case-insensitive for
// ASCII), ordered by most recently updated, and the total match count.
func Search(ctx context.Context, q Querier, query string, limit, offset int) ([]note.Note, int, error) {
	pattern := "%" + escapeLike(query) + "%"
	where := ` WHERE title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'`

	var total int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes"+where, pattern, pattern).Scan(&total); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	rows, err := q.QueryContext(ctx,
		selectNoteColumns+where+" ORDER BY updated_at DESC, id DESC LIMIT ? OFFSET ?",
		pattern, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	defer rows.Close()

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// escapeLike escapes LIKE wildcards so query matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

type scanner interface {
	Scan(dest ...any) error
}

// scanNote scans a single row into a Note struct.
func scanNote(row scanner) (*note.Note, error) {
	var n note.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func scanNotes(rows *sql.Rows) ([]note.Note, error) {
	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return notes, nil
}
