package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	colorUnfocusedBg = tcell.Color236
	colorFocusedBg   = tcell.Color24
)

// icons maps header action icon names to terminal glyphs.
var icons = map[string]string{
	"check": "✓",
}

func iconLabel(icon, label string) string {
	if glyph, ok := icons[icon]; ok {
		return glyph + " " + label
	}
	return label
}

func styleButton(b *tview.Button) *tview.Button {
	b.SetBackgroundColor(colorUnfocusedBg)
	b.SetLabelColor(tcell.ColorWhite)
	b.SetFocusFunc(func() {
		b.SetLabelColor(colorFocusedBg)
		b.SetBackgroundColor(tcell.ColorWhite)
	})
	b.SetBlurFunc(func() {
		b.SetBackgroundColor(colorUnfocusedBg)
		b.SetLabelColor(tcell.ColorWhite)
	})
	return b
}

func styleForm(f *tview.Form) {
	f.SetFieldBackgroundColor(colorUnfocusedBg)
	f.SetButtonBackgroundColor(colorUnfocusedBg)
}
