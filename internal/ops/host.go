package ops

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/screen"
)

// Host is a navigator and prompter for screens without a visible UI.
// It records navigation and answers every alert by pressing Answer; an empty
// Answer leaves the alert pending for the caller.
type Host struct {
	Answer string

	Options screen.Options
	Backs   int
	Alerts  []screen.Alert
}

// GoBack records a back navigation.
func (h *Host) GoBack() { h.Backs++ }

// SetOptions records the latest header configuration.
func (h *Host) SetOptions(opts screen.Options) { h.Options = opts }

// Alert records a and presses Answer if set.
func (h *Host) Alert(a screen.Alert) {
	h.Alerts = append(h.Alerts, a)
	if h.Answer != "" {
		a.Press(h.Answer)
	}
}

// Pending returns the most recent alert, or false if none was shown.
func (h *Host) Pending() (screen.Alert, bool) {
	if len(h.Alerts) == 0 {
		return screen.Alert{}, false
	}
	return h.Alerts[len(h.Alerts)-1], true
}

// OpenScreen acquires a session bound to ctx and mounts a note screen on it.
// The session is released when ctx ends; callers may Close it sooner.
func OpenScreen(ctx context.Context, database *sql.DB, nav screen.Navigator, prompter screen.Prompter, logger *slog.Logger, params screen.Params) (*screen.Screen, *db.Session, error) {
	session, err := db.OpenSession(ctx, database)
	if err != nil {
		return nil, nil, err
	}
	s := screen.New(ctx, screen.Deps{
		Navigator: nav,
		Prompter:  prompter,
		Store:     session,
		Logger:    logger,
	}, params)
	return s, session, nil
}
