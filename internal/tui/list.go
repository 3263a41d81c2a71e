package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hpungsan/notepad/internal/errors"
	"github.com/hpungsan/notepad/internal/ops"
)

const newNoteLabel = "+ New note"

// listPage is the root destination: every note, most recently updated first.
type listPage struct {
	app    *App
	view   *tview.List
	status *tview.TextView
	layout *tview.Flex
}

func newListPage(a *App) *listPage {
	p := &listPage{
		app:    a,
		view:   tview.NewList(),
		status: tview.NewTextView(),
	}
	p.view.SetBorder(true).SetTitle(" Notes ")
	p.view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			a.app.Stop()
			return nil
		}
		return event
	})
	p.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.view, 0, 1, true).
		AddItem(p.status, 1, 0, false)
	return p
}

// reload re-queries the list. It is the refresh callback handed to detail screens.
func (p *listPage) reload() {
	limit := 0
	if p.app.cfg != nil {
		limit = p.app.cfg.ListLimit
	}
	out, err := ops.List(p.app.ctx, p.app.db, ops.ListInput{Limit: limit})
	if err != nil {
		p.app.log.Error("Error loading notes", "error", errors.Cause(err))
		p.status.SetText(" Could not load notes")
		return
	}

	current := p.view.GetCurrentItem()
	p.view.Clear()
	p.view.AddItem(newNoteLabel, "", 'n', func() { p.app.openNew() })
	for _, item := range out.Items {
		id := item.ID
		p.view.AddItem(item.Title, item.Preview, 0, func() { p.app.openNote(id) })
	}
	if current < p.view.GetItemCount() {
		p.view.SetCurrentItem(current)
	}
	p.status.SetText(fmt.Sprintf(" %d notes  n: new  enter: open  q: quit", out.Pagination.Total))
}
