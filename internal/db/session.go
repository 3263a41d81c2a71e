package db

import (
	"context"
	"database/sql"
	"sync"

	"github.com/hpungsan/notepad/internal/errors"
	"github.com/hpungsan/notepad/internal/note"
)

// Session is one pooled connection held for the lifetime of a screen owner.
// It is released when the owner's context ends or Close is called.
type Session struct {
	conn *sql.Conn
	stop func() bool

	mu     sync.Mutex
	closed bool
}

// OpenSession acquires a dedicated connection bound to ctx.
func OpenSession(ctx context.Context, database *sql.DB) (*Session, error) {
	conn, err := database.Conn(ctx)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	s := &Session{conn: conn}
	s.mu.Lock()
	s.stop = context.AfterFunc(ctx, func() { _ = s.Close() })
	s.mu.Unlock()
	return s, nil
}

// Insert runs the insert statement and returns the new note id.
func (s *Session) Insert(ctx context.Context, title, content string) (int64, error) {
	return InsertNote(ctx, s.conn, title, content)
}

// Update runs the update statement for id.
func (s *Session) Update(ctx context.Context, id int64, title, content string) error {
	_, err := UpdateNote(ctx, s.conn, id, title, content)
	return err
}

// Delete runs the delete statement for id.
func (s *Session) Delete(ctx context.Context, id int64) error {
	_, err := DeleteNote(ctx, s.conn, id)
	return err
}

// Get loads a note through the session's connection.
func (s *Session) Get(ctx context.Context, id int64) (*note.Note, error) {
	return GetByID(ctx, s.conn, id)
}

// Closed reports whether the connection has been returned to the pool.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close returns the connection to the pool. Safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.stop != nil {
		s.stop()
	}
	return s.conn.Close()
}
