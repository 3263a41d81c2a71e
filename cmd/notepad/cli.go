package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/notepad/internal/config"
	"github.com/hpungsan/notepad/internal/errors"
	"github.com/hpungsan/notepad/internal/mcp"
	"github.com/hpungsan/notepad/internal/ops"
	"github.com/hpungsan/notepad/internal/tui"
	"github.com/hpungsan/notepad/internal/web"
)

// maxStdinBytes bounds note content read from stdin.
const maxStdinBytes = 1 << 20

// logFileName is written under the base directory while the terminal UI owns the screen.
const logFileName = "notepad.log"

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, logger *slog.Logger, base string) *cli.App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	app := &cli.App{
		Name:    "notepad",
		Usage:   "Local notes",
		Version: Version,
		Commands: []*cli.Command{
			newCmd(db, logger),
			editCmd(db, logger),
			deleteCmd(db, logger),
			listCmd(db, cfg),
			showCmd(db),
			searchCmd(db, cfg),
			tuiCmd(db, cfg, base),
			serveCmd(db, cfg, logger),
			mcpCmd(db, cfg, logger),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// newCmd creates the new command.
func newCmd(db *sql.DB, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Create a note (content from --content, or piped stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Note title"},
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "Note content"},
		},
		Action: func(c *cli.Context) error {
			content, err := contentArg(c)
			if err != nil {
				return outputError(err)
			}
			if !c.IsSet("content") && stdinHasData() {
				if content, err = stdinContent(); err != nil {
					return outputError(err)
				}
			}

			output, err := ops.Save(c.Context, db, logger, ops.SaveInput{
				Title:   c.String("title"),
				Content: content,
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// editCmd creates the edit command. Fields that are not given keep their current value.
func editCmd(db *sql.DB, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a note (--content - reads stdin)",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "New content"},
		},
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return outputError(err)
			}

			current, err := ops.Fetch(c.Context, db, ops.FetchInput{ID: id})
			if err != nil {
				return outputError(err)
			}

			input := ops.SaveInput{
				ID:      id,
				Title:   current.Title,
				Content: current.Content,
			}
			if c.IsSet("title") {
				input.Title = c.String("title")
			}
			if c.IsSet("content") {
				if input.Content, err = contentArg(c); err != nil {
					return outputError(err)
				}
			}

			output, err := ops.Save(c.Context, db, logger, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// deleteCmd creates the delete command. Without --yes an interactive terminal is asked
// to confirm; anything else keeps the note.
func deleteCmd(db *sql.DB, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a note permanently",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Confirm without prompting"},
		},
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return outputError(err)
			}

			confirm := c.Bool("yes")
			if !confirm && isTerminal() {
				confirm = askConfirm(c.App.Reader, c.App.ErrWriter, id)
			}

			output, err := ops.Delete(c.Context, db, logger, ops.DeleteInput{
				ID:      id,
				Confirm: confirm,
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List notes, most recently updated first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Max results"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "Pagination offset"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, db, ops.ListInput{
				Limit:  limitArg(c, cfg),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// showCmd creates the show command.
func showCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a note",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Fetch(c.Context, db, ops.FetchInput{ID: id})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// searchCmd creates the search command.
func searchCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search note titles and content",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Max results"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "Pagination offset"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Search(c.Context, db, ops.SearchInput{
				Query:  strings.Join(c.Args().Slice(), " "),
				Limit:  limitArg(c, cfg),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// tuiCmd creates the tui command. Logs go to a file since the terminal is taken.
func tuiCmd(db *sql.DB, cfg *config.Config, base string) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Open the terminal UI",
		Action: func(c *cli.Context) error {
			f, err := os.OpenFile(filepath.Join(base, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			defer f.Close()

			return tui.New(c.Context, db, cfg, newLogger(f, cfg.LogLevel)).Run()
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Interface to listen on"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			serveCfg := *cfg
			if c.IsSet("bind") {
				serveCfg.WebBind = c.String("bind")
			}
			if c.IsSet("port") {
				serveCfg.WebPort = c.Int("port")
			}

			srv, err := web.NewServer(db, &serveCfg, logger, Version)
			if err != nil {
				return outputError(err)
			}
			return web.Run(c.Context, srv, logger)
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd(db *sql.DB, cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve MCP tools over stdio",
		Action: func(c *cli.Context) error {
			if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
				logger.Warn("unknown tools in disabled_tools", "tools", unknown)
			}
			return mcp.Run(db, cfg, logger, Version)
		},
	}
}

// Helper functions

// outputJSON marshals result to w as JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	var nErr *errors.NoteError
	if stderrors.As(err, &nErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", nErr.Code, nErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// parseID reads the positional note id.
func parseID(c *cli.Context) (int64, error) {
	if c.NArg() == 0 {
		return 0, errors.NewInvalidRequest("note id is required")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidRequest(fmt.Sprintf("invalid note id: %q", c.Args().First()))
	}
	return id, nil
}

// limitArg returns --limit, or the configured page size when it is not given.
func limitArg(c *cli.Context, cfg *config.Config) int {
	if c.IsSet("limit") || cfg == nil {
		return c.Int("limit")
	}
	return cfg.ListLimit
}

// contentArg returns --content, reading stdin when its value is "-".
func contentArg(c *cli.Context) (string, error) {
	if c.String("content") != "-" {
		return c.String("content"), nil
	}
	return stdinContent()
}

func stdinContent() (string, error) {
	text, err := readStdin(maxStdinBytes)
	if err != nil {
		return "", errors.NewInvalidRequest(err.Error())
	}
	return text, nil
}

// askConfirm prints the delete prompt and reads a yes/no answer.
func askConfirm(r io.Reader, w io.Writer, id int64) bool {
	fmt.Fprintf(w, "Delete note %d permanently? [y/N] ", id)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin, failing when it exceeds maxBytes.
// A single trailing newline, as left by echo, is dropped.
func readStdin(maxBytes int) (string, error) {
	data, err := io.ReadAll(io.LimitReader(os.Stdin, int64(maxBytes)+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxBytes {
		return "", fmt.Errorf("stdin exceeds %d bytes", maxBytes)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
