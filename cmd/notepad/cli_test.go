package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/hpungsan/notepad/internal/config"
	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/note"
	"github.com/hpungsan/notepad/internal/ops"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func newTestApp(t *testing.T, database *sql.DB) *cli.App {
	t.Helper()
	return newCLIApp(database, config.DefaultConfig(), nil, t.TempDir())
}

// runCLI runs args against app and returns what it wrote to stdout.
func runCLI(app *cli.App, args ...string) (string, error) {
	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"notepad"}, args...))
	return buf.String(), err
}

// withStdin replaces os.Stdin with a pipe carrying content.
func withStdin(t *testing.T, content string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	go func() {
		_, _ = w.WriteString(content)
		w.Close()
	}()
	oldStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = oldStdin
		r.Close()
	})
}

func seedNote(t *testing.T, database *sql.DB, title, content string) int64 {
	t.Helper()
	id, err := db.InsertNote(context.Background(), database, title, content)
	require.NoError(t, err)
	return id
}

func TestCLINew(t *testing.T) {
	database := setupTestDB(t)

	out, err := runCLI(newTestApp(t, database), "new", "--title", "Groceries", "--content", "")
	require.NoError(t, err)

	var output ops.SaveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output), "output: %s", out)
	require.Equal(t, ops.OutcomeSaved, output.Outcome)
	require.NotNil(t, output.Note)
	require.Equal(t, "Groceries", output.Note.Title)
	require.Equal(t, "", output.Note.Content)
}

func TestCLINew_ContentFromStdin(t *testing.T) {
	database := setupTestDB(t)
	withStdin(t, "milk\neggs\n")

	out, err := runCLI(newTestApp(t, database), "new", "-t", "Groceries")
	require.NoError(t, err)

	var output ops.SaveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	n, err := db.GetByID(context.Background(), database, output.ID)
	require.NoError(t, err)
	require.Equal(t, "milk\neggs", n.Content)
}

func TestCLINew_BlankDiscarded(t *testing.T) {
	database := setupTestDB(t)

	out, err := runCLI(newTestApp(t, database), "new", "--title", "  ", "--content", "\n")
	require.NoError(t, err)
	require.Contains(t, out, `"outcome": "discarded"`)

	output, err := ops.List(context.Background(), database, ops.ListInput{})
	require.NoError(t, err)
	require.Equal(t, 0, output.Pagination.Total)
}

func TestCLIEdit(t *testing.T) {
	database := setupTestDB(t)
	id := seedNote(t, database, "Old", "keep me")
	app := newTestApp(t, database)

	t.Run("title only keeps content", func(t *testing.T) {
		_, err := runCLI(app, "edit", "--title", "New", itoa(id))
		require.NoError(t, err)

		n, err := db.GetByID(context.Background(), database, id)
		require.NoError(t, err)
		require.Equal(t, "New", n.Title)
		require.Equal(t, "keep me", n.Content)
	})

	t.Run("content from stdin", func(t *testing.T) {
		withStdin(t, "replaced")
		_, err := runCLI(app, "edit", "--content", "-", itoa(id))
		require.NoError(t, err)

		n, err := db.GetByID(context.Background(), database, id)
		require.NoError(t, err)
		require.Equal(t, "replaced", n.Content)
	})

	t.Run("missing note", func(t *testing.T) {
		_, err := runCLI(app, "edit", "--title", "x", "999")
		require.Error(t, err)
		require.Contains(t, err.Error(), "[NOT_FOUND]")
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := runCLI(app, "edit", "abc")
		require.Error(t, err)
		require.Contains(t, err.Error(), "[INVALID_REQUEST]")
	})
}

func TestCLIDelete(t *testing.T) {
	database := setupTestDB(t)
	app := newTestApp(t, database)

	t.Run("declined keeps note", func(t *testing.T) {
		id := seedNote(t, database, "keep", "")
		app.Reader = strings.NewReader("n\n")

		out, err := runCLI(app, "delete", itoa(id))
		require.NoError(t, err)
		require.Contains(t, out, `"outcome": "kept"`)

		_, err = db.GetByID(context.Background(), database, id)
		require.NoError(t, err)
	})

	t.Run("yes deletes note", func(t *testing.T) {
		id := seedNote(t, database, "drop", "")

		out, err := runCLI(app, "delete", "--yes", itoa(id))
		require.NoError(t, err)
		require.Contains(t, out, `"outcome": "deleted"`)

		_, err = db.GetByID(context.Background(), database, id)
		require.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := runCLI(app, "delete", "--yes")
		require.Error(t, err)
		require.Contains(t, err.Error(), "note id is required")
	})
}

func TestCLIListShowSearch(t *testing.T) {
	database := setupTestDB(t)
	id := seedNote(t, database, "Groceries", "milk")
	seedNote(t, database, "Work", "report")
	app := newTestApp(t, database)

	out, err := runCLI(app, "list", "--limit", "1")
	require.NoError(t, err)
	var list ops.ListOutput
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Items, 1)
	require.Equal(t, 2, list.Pagination.Total)
	require.True(t, list.Pagination.HasMore)

	out, err = runCLI(app, "show", itoa(id))
	require.NoError(t, err)
	var n note.Note
	require.NoError(t, json.Unmarshal([]byte(out), &n))
	require.Equal(t, "milk", n.Content)

	out, err = runCLI(app, "search", "MILK")
	require.NoError(t, err)
	var found ops.ListOutput
	require.NoError(t, json.Unmarshal([]byte(out), &found))
	require.Len(t, found.Items, 1)
	require.Equal(t, id, found.Items[0].ID)

	_, err = runCLI(app, "search")
	require.Error(t, err)
	require.Contains(t, err.Error(), "[INVALID_REQUEST]")
}

func TestAskConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var prompt bytes.Buffer
			require.Equal(t, tt.want, askConfirm(strings.NewReader(tt.input), &prompt, 7))
			require.Contains(t, prompt.String(), "Delete note 7")
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, "warn").Info("hidden")
	require.Empty(t, buf.String())

	newLogger(&buf, "debug").Debug("shown")
	require.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	logger := newLogger(&buf, "bogus")
	require.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	require.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	t.Setenv("NOTEPAD_HOME", dir)

	got, err := baseDir()
	require.NoError(t, err)
	require.Equal(t, dir, got)

	t.Setenv("NOTEPAD_HOME", "")
	got, err = baseDir()
	require.NoError(t, err)
	require.Equal(t, ".notepad", filepath.Base(got))
}

// TestIsHelpOrVersion tests the isHelpOrVersion function.
func TestIsHelpOrVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"no args", []string{"notepad"}, false},
		{"help flag", []string{"notepad", "--help"}, true},
		{"short help flag", []string{"notepad", "-h"}, true},
		{"version flag", []string{"notepad", "--version"}, true},
		{"short version flag", []string{"notepad", "-v"}, true},
		{"help subcommand", []string{"notepad", "help"}, true},
		{"new command is not help", []string{"notepad", "new"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			if result := isHelpOrVersion(); result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestIsCLIMode(t *testing.T) {
	tests := []struct {
		args     []string
		expected bool
	}{
		{[]string{"notepad"}, false},
		{[]string{"notepad", "tui"}, true},
		{[]string{"notepad", "serve"}, true},
		{[]string{"notepad", "--version"}, true},
		{[]string{"notepad", "unknown"}, false},
	}

	for _, tt := range tests {
		oldArgs := os.Args
		os.Args = tt.args
		got := isCLIMode()
		os.Args = oldArgs
		if got != tt.expected {
			t.Errorf("isCLIMode(%v) = %v, want %v", tt.args, got, tt.expected)
		}
	}
}

// TestReadStdinWithLimit tests the readStdin function respects size limits.
func TestReadStdinWithLimit(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		withStdin(t, "small content\n")

		result, err := readStdin(1000)
		require.NoError(t, err)
		require.Equal(t, "small content", result)
	})

	t.Run("exceeds limit", func(t *testing.T) {
		withStdin(t, strings.Repeat("x", 100))

		// Limit is 50 bytes, content is 100
		_, err := readStdin(50)
		require.Error(t, err)
	})
}

func itoa(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
