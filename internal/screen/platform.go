package screen

import "context"

// Navigator is the navigation stack hosting a screen.
type Navigator interface {
	// GoBack returns to the previous destination.
	GoBack()
	// SetOptions replaces the screen's header configuration.
	SetOptions(opts Options)
}

// Options configures the navigation header.
type Options struct {
	// HeaderRight is rendered right-aligned in the header.
	HeaderRight []Action
}

// Action is a pressable header affordance.
type Action struct {
	// Icon names the glyph the host should draw, e.g. "check".
	Icon    string
	Label   string
	OnPress func()
}

// Prompter shows modal alerts.
type Prompter interface {
	Alert(a Alert)
}

// Alert is a modal prompt with labelled choices.
type Alert struct {
	Title      string
	Message    string
	Buttons    []Button
	Cancelable bool
}

// Button is one choice in an Alert.
type Button struct {
	Text    string
	OnPress func()
}

// Press runs the handler of the button labelled text.
// It reports false when no such button exists.
func (a Alert) Press(text string) bool {
	for _, b := range a.Buttons {
		if b.Text == text {
			if b.OnPress != nil {
				b.OnPress()
			}
			return true
		}
	}
	return false
}

// Store executes the note statements. *db.Session satisfies it.
type Store interface {
	Insert(ctx context.Context, title, content string) (int64, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}
