package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hpungsan/notepad/internal/errors"
	"github.com/hpungsan/notepad/internal/note"
	"github.com/hpungsan/notepad/internal/ops"
	"github.com/hpungsan/notepad/internal/screen"
)

const detailHint = " ctrl-s: save  esc: back"

// detailPage hosts one note screen.
type detailPage struct {
	app      *App
	nav      *navigator
	prompter *prompter
	screen   *screen.Screen

	form   *tview.Form
	hint   *tview.TextView
	layout *tview.Flex
}

// openNew shows an empty detail screen.
func (a *App) openNew() {
	if _, err := a.openDetail(nil); err != nil {
		a.list.status.SetText(" Could not open note")
	}
}

// openNote loads note id and shows it in a detail screen.
func (a *App) openNote(id int64) {
	out, err := ops.Fetch(a.ctx, a.db, ops.FetchInput{ID: id})
	if err != nil {
		a.log.Error("Error loading note", "id", id, "error", errors.Cause(err))
		a.list.status.SetText(" Could not open note")
		return
	}
	if _, err := a.openDetail(&out.Note); err != nil {
		a.list.status.SetText(" Could not open note")
	}
}

// openDetail mounts a screen for n (nil for a new note) and pushes it.
// The screen's session lives until the page is popped.
func (a *App) openDetail(n *note.Note) (*detailPage, error) {
	ctx, cancel := context.WithCancel(a.ctx)

	title := "New Note"
	if n != nil {
		title = "Edit Note"
	}
	d := &detailPage{
		app:      a,
		nav:      newNavigator(a, title),
		prompter: &prompter{app: a},
		hint:     tview.NewTextView().SetText(detailHint),
	}

	updated := false
	s, session, err := ops.OpenScreen(ctx, a.db, d.nav, d.prompter, a.log, screen.Params{
		Note:     n,
		OnUpdate: func() { updated = true },
	})
	if err != nil {
		cancel()
		a.log.Error("Error opening note session", "error", errors.Cause(err))
		return nil, err
	}
	d.screen = s

	d.form = tview.NewForm().
		AddInputField("Title", s.Title(), 0, nil, s.SetTitle).
		AddTextArea("Content", s.Content(), 0, 12, 0, s.SetContent)
	if s.CanDelete() {
		d.form.AddButton(screen.ConfirmDelete, d.requestDelete)
	}
	styleForm(d.form)
	d.form.SetInputCapture(d.capture)
	d.prompter.restore = d.form

	d.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.nav.header, 1, 0, false).
		AddItem(d.form, 0, 1, true).
		AddItem(d.hint, 1, 0, false)

	a.push(destination{
		name:  pageDetail,
		focus: d.form,
		leave: func() {
			cancel()
			_ = session.Close()
			// The list query needs a pool connection, so reload only once the
			// session has returned its own.
			if updated {
				a.list.reload()
			}
		},
	}, d.layout)
	return d, nil
}

func (d *detailPage) capture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlS:
		d.nav.press(screen.SaveIcon)
		return nil
	case tcell.KeyEscape:
		d.app.back()
		return nil
	}
	return event
}

func (d *detailPage) requestDelete() {
	if err := d.screen.RequestDelete(); err != nil {
		d.app.log.Debug("delete unavailable", "error", err)
	}
}
