package web

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hpungsan/notepad/internal/config"
	"github.com/hpungsan/notepad/internal/errors"
	"github.com/hpungsan/notepad/internal/note"
	"github.com/hpungsan/notepad/internal/ops"
	"github.com/hpungsan/notepad/internal/screen"
)

// Handlers contains HTTP route handlers for the web UI.
//
// Every request that changes a note mounts a note screen for the length of the
// request. An ops.Host stands in for navigation: GoBack becomes a redirect to the
// list, and the delete prompt becomes the confirm page.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	log      *slog.Logger
	renderer *Renderer
}

// HandleList handles GET /notes: list notes, or search them when q is set.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := parseIntParam(r, "limit", h.cfg.ListLimit)
	offset := parseIntParam(r, "offset", 0)

	var (
		result *ops.ListOutput
		err    error
	)
	if query != "" {
		result, err = ops.Search(r.Context(), h.db, ops.SearchInput{Query: query, Limit: limit, Offset: offset})
	} else {
		result, err = ops.List(r.Context(), h.db, ops.ListInput{Limit: limit, Offset: offset})
	}
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	h.renderer.renderPage(w, r, "list", ListPageData{
		PageData: PageData{
			Title:   "Notes",
			Version: h.renderer.version,
			Nav:     "notes",
		},
		Items:      result.Items,
		Pagination: result.Pagination,
		Query:      query,
	})
}

// HandleNew handles GET /notes/new: an empty note screen.
func (h *Handlers) HandleNew(w http.ResponseWriter, r *http.Request) {
	s, host := h.preview(r.Context(), nil)
	h.renderDetail(w, r, s, host, nil)
}

// HandleDetail handles GET /notes/{id}: the note screen for an existing note.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	n, ok := h.fetch(w, r)
	if !ok {
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, n)
		return
	}

	s, host := h.preview(r.Context(), n)
	h.renderDetail(w, r, s, host, n)
}

// HandleCreate handles POST /notes: save a new note.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, nil)
}

// HandleUpdate handles POST /notes/{id}: save an existing note.
func (h *Handlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	n, ok := h.fetch(w, r)
	if !ok {
		return
	}
	h.save(w, r, n)
}

func (h *Handlers) save(w http.ResponseWriter, r *http.Request, n *note.Note) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	host := &ops.Host{}
	s, session, err := ops.OpenScreen(r.Context(), h.db, host, host, h.log, screen.Params{Note: n})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	defer session.Close()

	s.SetTitle(r.PostFormValue("title"))
	s.SetContent(r.PostFormValue("content"))

	if err := s.Save(r.Context()); err != nil {
		if wantsJSON(r) {
			h.renderer.renderError(w, r, err)
			return
		}
		// The screen stays: show the draft again. The failure is only logged.
		h.renderDetail(w, r, s, host, n)
		return
	}

	outcome := ops.OutcomeSaved
	if s.Status() == screen.StatusDiscarded {
		outcome = ops.OutcomeDiscarded
	}
	h.finish(w, r, host, outcome, s.NoteID())
}

// HandleConfirmDelete handles GET /notes/{id}/delete: the delete prompt.
func (h *Handlers) HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	n, ok := h.fetch(w, r)
	if !ok {
		return
	}

	s, host := h.preview(r.Context(), n)
	if err := s.RequestDelete(); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	alert, _ := host.Pending()

	h.renderer.renderPage(w, r, "confirm", ConfirmPageData{
		PageData: PageData{
			Title:   alert.Title,
			Version: h.renderer.version,
			Nav:     "notes",
		},
		NoteID: n.ID,
		Alert:  alert,
	})
}

// HandleDelete handles POST /notes/{id}/delete: answer the delete prompt.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}
	choice := r.PostFormValue("choice")

	n, ok := h.fetch(w, r)
	if !ok {
		return
	}

	host := &ops.Host{}
	s, session, err := ops.OpenScreen(r.Context(), h.db, host, host, h.log, screen.Params{Note: n})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	defer session.Close()

	if err := s.RequestDelete(); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	alert, _ := host.Pending()
	if !alert.Press(choice) {
		h.renderer.renderError(w, r, errors.NewInvalidRequest(fmt.Sprintf("choice must be %q or %q", screen.ConfirmDelete, screen.DeclineDelete)))
		return
	}
	if err := s.Err(); err != nil {
		if wantsJSON(r) {
			h.renderer.renderError(w, r, err)
			return
		}
		// The screen stays; the failure is only logged.
		http.Redirect(w, r, fmt.Sprintf("/notes/%d", n.ID), http.StatusSeeOther)
		return
	}

	outcome := ops.OutcomeKept
	if s.Status() == screen.StatusDeleted {
		outcome = ops.OutcomeDeleted
	}
	h.finish(w, r, host, outcome, n.ID)
}

// finish answers a completed screen action: JSON clients get the outcome, browsers
// follow the screen's navigation.
func (h *Handlers) finish(w http.ResponseWriter, r *http.Request, host *ops.Host, outcome ops.Outcome, id int64) {
	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, map[string]any{
			"outcome": outcome,
			"id":      id,
		})
		return
	}

	target := "/notes"
	if host.Backs == 0 {
		target = fmt.Sprintf("/notes/%d", id)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// preview mounts a screen without a store, for rendering only.
func (h *Handlers) preview(ctx context.Context, n *note.Note) (*screen.Screen, *ops.Host) {
	host := &ops.Host{}
	s := screen.New(ctx, screen.Deps{Navigator: host, Prompter: host, Logger: h.log}, screen.Params{Note: n})
	return s, host
}

func (h *Handlers) renderDetail(w http.ResponseWriter, r *http.Request, s *screen.Screen, host *ops.Host, n *note.Note) {
	data := DetailPageData{
		PageData: PageData{
			Title:   "New Note",
			Version: h.renderer.version,
			Nav:     "new",
		},
		Action:    "/notes",
		Draft:     s.Draft(),
		Header:    host.Options.HeaderRight,
		CanDelete: s.CanDelete(),
		Preview:   renderMarkdown(s.Content()),
	}
	if n != nil {
		data.Title = n.DisplayTitle()
		data.Nav = "notes"
		data.Action = fmt.Sprintf("/notes/%d", n.ID)
		data.NoteID = n.ID
		data.CreatedAt = n.CreatedAt
		data.UpdatedAt = n.UpdatedAt
	}
	h.renderer.renderPage(w, r, "detail", data)
}

// fetch loads the note named by the {id} path segment, rendering the error if any.
func (h *Handlers) fetch(w http.ResponseWriter, r *http.Request) (*note.Note, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("note id must be an integer"))
		return nil, false
	}
	out, err := ops.Fetch(r.Context(), h.db, ops.FetchInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return nil, false
	}
	return &out.Note, true
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
