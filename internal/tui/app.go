// Package tui is the terminal front end: a note list and the note detail screen
// hosted on a tview page stack.
package tui

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hpungsan/notepad/internal/config"
)

const (
	pageList   = "list"
	pageDetail = "detail"
	pageAlert  = "alert"
)

// destination is one entry of the navigation stack.
type destination struct {
	name  string
	focus tview.Primitive
	// leave runs when the destination is popped.
	leave func()
}

// App is the terminal UI.
type App struct {
	ctx context.Context
	db  *sql.DB
	cfg *config.Config
	log *slog.Logger

	app   *tview.Application
	pages *tview.Pages
	list  *listPage
	stack []destination
}

// New builds the UI and loads the note list. ctx bounds every screen session.
func New(ctx context.Context, database *sql.DB, cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tview.Styles.ContrastBackgroundColor = colorUnfocusedBg
	tview.Styles.TitleColor = tcell.ColorLightSkyBlue

	a := &App{
		ctx:   ctx,
		db:    database,
		cfg:   cfg,
		log:   logger,
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
	}
	a.list = newListPage(a)
	a.push(destination{name: pageList, focus: a.list.view}, a.list.layout)
	a.list.reload()
	return a
}

// Run blocks until the user quits or ctx ends.
func (a *App) Run() error {
	stop := context.AfterFunc(a.ctx, a.app.Stop)
	defer stop()
	return a.app.SetRoot(a.pages, true).EnableMouse(true).Run()
}

// push shows p as the new top destination.
func (a *App) push(d destination, p tview.Primitive) {
	a.stack = append(a.stack, d)
	a.pages.AddAndSwitchToPage(d.name, p, true)
	a.app.SetFocus(d.focus)
}

// back pops the top destination. The root list is never popped.
func (a *App) back() {
	if len(a.stack) < 2 {
		return
	}
	top := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	a.pages.RemovePage(top.name)
	if top.leave != nil {
		top.leave()
	}

	prev := a.stack[len(a.stack)-1]
	a.pages.SwitchToPage(prev.name)
	a.app.SetFocus(prev.focus)
}

// top returns the name of the visible destination.
func (a *App) top() string {
	return a.stack[len(a.stack)-1].name
}
