// Package screen implements the note detail screen: a draft editor that inserts,
// updates or deletes one note and then returns to the previous destination.
//
// The screen owns no platform services. Navigation, the confirmation prompt and the
// note store are injected, so the same screen drives the terminal UI, the web UI
// and the headless hosts used by the CLI and MCP tools.
package screen

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/notepad/internal/errors"
	"github.com/hpungsan/notepad/internal/note"
)

// Labels of the delete confirmation prompt.
const (
	DeleteAlertTitle   = "Are You Sure!"
	DeleteAlertMessage = "This action will delete your note permanently"
	ConfirmDelete      = "Delete"
	DeclineDelete      = "No Thanks"
)

// SaveIcon names the header action that saves the draft.
const SaveIcon = "check"

var (
	// ErrClosed is returned by actions on a screen that already saved, deleted or
	// discarded its draft.
	ErrClosed = errors.NewConflict("note screen is closed")

	// ErrNotEditing is returned by delete actions on a screen creating a new note.
	ErrNotEditing = errors.NewInvalidRequest("delete is only available for an existing note")
)

// Mode tells whether the screen creates a note or edits an existing one.
type Mode string

const (
	ModeNew     Mode = "new"
	ModeEditing Mode = "editing"
)

// Status is the lifecycle state of the draft. Every status but StatusUnsaved is
// terminal and coincides with navigating away.
type Status string

const (
	StatusUnsaved   Status = "unsaved"
	StatusSaved     Status = "saved"
	StatusDeleted   Status = "deleted"
	StatusDiscarded Status = "discarded"
)

// Terminal reports whether the screen has left its editing state.
func (s Status) Terminal() bool {
	return s != StatusUnsaved
}

// Params are the navigation parameters supplied by the caller.
type Params struct {
	// Note is the note being edited; nil creates a new one.
	Note *note.Note
	// OnUpdate tells the caller to reload its list after a successful write.
	OnUpdate func()
}

// Deps are the platform services the screen runs against.
type Deps struct {
	Navigator Navigator
	Prompter  Prompter
	Store     Store
	Logger    *slog.Logger
}

// Screen is one mounted note detail screen.
// Like the UI thread that drives it, a Screen is not safe for concurrent use.
type Screen struct {
	id  string
	ctx context.Context

	nav      Navigator
	prompter Prompter
	store    Store
	log      *slog.Logger

	params Params
	draft  note.Draft
	mode   Mode
	status Status
	noteID int64
	err    error
}

// New initializes a screen from params and mounts its header.
// ctx is the owning context; prompt callbacks run their statements under it.
func New(ctx context.Context, deps Deps, params Params) *Screen {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Screen{
		id:       ulid.Make().String(),
		ctx:      ctx,
		nav:      deps.Navigator,
		prompter: deps.Prompter,
		store:    deps.Store,
		params:   params,
		draft:    note.NewDraft(params.Note),
		mode:     ModeNew,
		status:   StatusUnsaved,
	}
	if params.Note != nil {
		s.mode = ModeEditing
		s.noteID = params.Note.ID
	}
	s.log = logger.With("screen", s.id, "mode", string(s.mode))
	if s.mode == ModeEditing {
		s.log = s.log.With("note_id", s.noteID)
	}

	s.configureHeader()
	return s
}

// ID returns the screen instance identifier used in logs.
func (s *Screen) ID() string { return s.id }

// Mode returns whether the screen is creating or editing.
func (s *Screen) Mode() Mode { return s.mode }

// Status returns the draft lifecycle state.
func (s *Screen) Status() Status { return s.status }

// Draft returns a copy of the current draft.
func (s *Screen) Draft() note.Draft { return s.draft }

// Title returns the draft title.
func (s *Screen) Title() string { return s.draft.Title }

// Content returns the draft content.
func (s *Screen) Content() string { return s.draft.Content }

// NoteID returns the id of the edited note, or of the inserted note after a save.
// It is zero for a new note that has not been saved.
func (s *Screen) NoteID() int64 { return s.noteID }

// Err returns the error of the last failed statement, or nil once a statement
// succeeds. Prompt callbacks have no caller to return to, so hosts read it here.
func (s *Screen) Err() error { return s.err }

// CanDelete reports whether the delete affordance is offered.
func (s *Screen) CanDelete() bool {
	return s.mode == ModeEditing && !s.status.Terminal()
}

// SetTitle replaces the draft title.
func (s *Screen) SetTitle(text string) { s.draft.Title = text }

// SetContent replaces the draft content.
func (s *Screen) SetContent(text string) { s.draft.Content = text }

// SetNavigator swaps the hosting navigator and reconfigures the header on it.
func (s *Screen) SetNavigator(nav Navigator) {
	s.nav = nav
	s.configureHeader()
}

// configureHeader installs the save action in the header.
func (s *Screen) configureHeader() {
	if s.nav == nil {
		return
	}
	s.nav.SetOptions(Options{
		HeaderRight: []Action{{
			Icon:    SaveIcon,
			Label:   "Save",
			OnPress: s.pressSave,
		}},
	})
}

// pressSave is the header save handler. Failures are already logged by Save.
func (s *Screen) pressSave() {
	_ = s.Save(s.ctx)
}

// Save persists the draft and navigates back.
//
// A draft whose trimmed title and content are both empty is discarded without a
// statement, even when editing an existing note. Otherwise an existing note is
// updated by id and a new note is inserted; on success OnUpdate runs once and the
// screen navigates back. On failure the error is logged, the screen stays and the
// error is returned.
func (s *Screen) Save(ctx context.Context) error {
	if s.status.Terminal() {
		return ErrClosed
	}

	if s.draft.Empty() {
		s.status = StatusDiscarded
		s.log.Debug("empty draft discarded")
		s.goBack()
		return nil
	}

	if s.mode == ModeEditing {
		if err := s.store.Update(ctx, s.noteID, s.draft.Title, s.draft.Content); err != nil {
			s.log.Error("Error updating note", "error", errors.Cause(err))
			s.err = err
			return err
		}
	} else {
		id, err := s.store.Insert(ctx, s.draft.Title, s.draft.Content)
		if err != nil {
			s.log.Error("Error inserting note", "error", errors.Cause(err))
			s.err = err
			return err
		}
		s.noteID = id
	}

	s.status = StatusSaved
	s.err = nil
	s.log.Debug("note saved", "id", s.noteID)
	s.complete()
	return nil
}

// RequestDelete shows the delete confirmation prompt. Confirming deletes the note
// under the screen's owning context; declining does nothing.
func (s *Screen) RequestDelete() error {
	if s.status.Terminal() {
		return ErrClosed
	}
	if s.mode != ModeEditing {
		return ErrNotEditing
	}

	s.prompter.Alert(Alert{
		Title:   DeleteAlertTitle,
		Message: DeleteAlertMessage,
		Buttons: []Button{
			{Text: ConfirmDelete, OnPress: func() { _ = s.Delete(s.ctx) }},
			{Text: DeclineDelete, OnPress: func() { s.log.Debug("no thanks") }},
		},
		Cancelable: true,
	})
	return nil
}

// Delete removes the edited note, runs OnUpdate once and navigates back.
// On failure the error is logged and the screen stays.
func (s *Screen) Delete(ctx context.Context) error {
	if s.status.Terminal() {
		return ErrClosed
	}
	if s.mode != ModeEditing {
		return ErrNotEditing
	}

	if err := s.store.Delete(ctx, s.noteID); err != nil {
		s.log.Error("Error deleting note", "error", errors.Cause(err))
		s.err = err
		return err
	}

	s.status = StatusDeleted
	s.err = nil
	s.log.Debug("note deleted")
	s.complete()
	return nil
}

// complete notifies the caller and leaves the screen.
func (s *Screen) complete() {
	if s.params.OnUpdate != nil {
		s.params.OnUpdate()
	}
	s.goBack()
}

func (s *Screen) goBack() {
	if s.nav != nil {
		s.nav.GoBack()
	}
}
