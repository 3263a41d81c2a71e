package tui

import (
	"github.com/rivo/tview"

	"github.com/hpungsan/notepad/internal/screen"
)

// navigator hosts one screen on the page stack and renders its header.
type navigator struct {
	app    *App
	header *tview.Flex
	title  string

	options screen.Options
}

func newNavigator(a *App, title string) *navigator {
	n := &navigator{app: a, title: title, header: tview.NewFlex()}
	n.render()
	return n
}

// GoBack pops the hosted screen.
func (n *navigator) GoBack() { n.app.back() }

// SetOptions re-renders the header with opts.
func (n *navigator) SetOptions(opts screen.Options) {
	n.options = opts
	n.render()
}

func (n *navigator) render() {
	n.header.Clear()
	n.header.AddItem(tview.NewTextView().SetText(" "+n.title), 0, 1, false)
	for _, action := range n.options.HeaderRight {
		label := iconLabel(action.Icon, action.Label)
		onPress := action.OnPress
		button := tview.NewButton(label).SetSelectedFunc(func() { pressAction(onPress) })
		n.header.AddItem(styleButton(button), len([]rune(label))+4, 0, false)
	}
}

// press runs the header action with the given icon.
func (n *navigator) press(icon string) bool {
	for _, action := range n.options.HeaderRight {
		if action.Icon == icon {
			pressAction(action.OnPress)
			return true
		}
	}
	return false
}

func pressAction(onPress func()) {
	if onPress != nil {
		onPress()
	}
}
