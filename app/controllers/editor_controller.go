package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"saminams/app/repositories"
	"saminams/app/services"
)

// EditorController exposes the draft state machine over HTTP.
type EditorController struct {
	editor *services.EditorService
	repo   *repositories.ContentRepository
	log    zerolog.Logger
}

// NewEditorController creates a new EditorController
func NewEditorController(editor *services.EditorService, repo *repositories.ContentRepository, log zerolog.Logger) *EditorController {
	return &EditorController{editor: editor, repo: repo, log: log}
}

func (ec *EditorController) status() map[string]interface{} {
	return map[string]interface{}{
		"state":     ec.editor.State().String(),
		"editingId": ec.editor.EditingID(),
		"draft":     ec.editor.Draft(),
	}
}

// StartNew begins a fresh draft.
func (ec *EditorController) StartNew(w http.ResponseWriter, r *http.Request) {
	ec.editor.StartNew()
	writeJSON(w, http.StatusOK, ec.status())
}

// StartEdit loads an existing post into the draft.
func (ec *EditorController) StartEdit(w http.ResponseWriter, r *http.Request) {
	post, err := ec.repo.GetPost(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	ec.editor.StartEdit(*post)
	writeJSON(w, http.StatusOK, ec.status())
}

// Draft reports the current state and draft.
func (ec *EditorController) Draft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ec.status())
}

// UpdateDraft overlays partial field edits onto the draft.
func (ec *EditorController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var fields services.DraftFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	ec.editor.UpdateDraft(fields)
	writeJSON(w, http.StatusOK, ec.status())
}

// Cancel discards the draft.
func (ec *EditorController) Cancel(w http.ResponseWriter, r *http.Request) {
	ec.editor.Cancel()
	writeJSON(w, http.StatusOK, ec.status())
}

// Commit publishes the draft through the repository.
func (ec *EditorController) Commit(w http.ResponseWriter, r *http.Request) {
	post, err := ec.editor.Commit()
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, services.ErrNoActiveDraft):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	ec.log.Info().Str("id", post.ID).Msg("draft committed")
	writeJSON(w, http.StatusOK, post)
}
