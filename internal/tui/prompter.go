package tui

import (
	"github.com/rivo/tview"

	"github.com/hpungsan/notepad/internal/screen"
)

// prompter shows alerts as a modal over the current page.
type prompter struct {
	app *App
	// restore receives focus when the modal closes.
	restore tview.Primitive

	modal   *tview.Modal
	pending *screen.Alert
	done    func(index int, label string)
}

// Alert shows a. Esc dismisses a cancelable alert without pressing a button.
func (p *prompter) Alert(a screen.Alert) {
	labels := make([]string, len(a.Buttons))
	for i, b := range a.Buttons {
		labels[i] = b.Text
	}

	p.pending = &a
	p.done = func(index int, label string) {
		if index < 0 && !a.Cancelable {
			return
		}
		p.close()
		if index >= 0 {
			a.Press(label)
		}
	}
	p.modal = tview.NewModal().
		SetText(a.Title + "\n\n" + a.Message).
		AddButtons(labels).
		SetDoneFunc(p.done)

	p.app.pages.AddPage(pageAlert, p.modal, true, true)
	p.app.app.SetFocus(p.modal)
}

// choose answers the open alert as if the button labelled label was selected.
// An empty label dismisses it.
func (p *prompter) choose(label string) bool {
	if p.pending == nil {
		return false
	}
	if label == "" {
		p.done(-1, "")
		return true
	}
	for i, b := range p.pending.Buttons {
		if b.Text == label {
			p.done(i, label)
			return true
		}
	}
	return false
}

func (p *prompter) close() {
	p.app.pages.RemovePage(pageAlert)
	p.modal = nil
	p.pending = nil
	if p.restore != nil {
		p.app.app.SetFocus(p.restore)
	}
}
