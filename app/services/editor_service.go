// Package services holds the editor state machine that mediates the single
// active draft between the UI surface and the content repository.
package services

import (
	"errors"
	"strings"
	"sync"

	"saminams/app/models"
	"saminams/app/repositories"
)

var (
	// ErrTitleRequired is the validation signal for a blank trimmed title.
	ErrTitleRequired = errors.New("title is required")
	// ErrNoActiveDraft is returned when committing from the idle state.
	ErrNoActiveDraft = errors.New("no active draft")
)

// EditorState names the three states of the draft lifecycle.
type EditorState int

const (
	StateIdle EditorState = iota
	StateCreating
	StateEditing
)

func (s EditorState) String() string {
	switch s {
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	default:
		return "idle"
	}
}

// EditorService owns the transient draft. Field edits mutate only the draft;
// the repository is touched exclusively inside Commit.
type EditorService struct {
	mu        sync.Mutex
	repo      *repositories.ContentRepository
	state     EditorState
	editingID string
	draft     models.Post
}

// NewEditorService creates an idle editor over the repository.
func NewEditorService(repo *repositories.ContentRepository) *EditorService {
	return &EditorService{repo: repo, draft: blankDraft()}
}

func blankDraft() models.Post {
	return models.Post{Date: models.Today(), Tags: []string{}}
}

// StartNew resets the draft to a blank template with a fresh id and enters
// the creating state. Valid from any state.
func (e *EditorService) StartNew() models.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateCreating
	e.editingID = ""
	e.draft = blankDraft()
	e.draft.BeforeCreate()
	return e.draft.Clone()
}

// StartEdit loads a copy of the post into the draft and enters the editing
// state. Valid from any state.
func (e *EditorService) StartEdit(post models.Post) models.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateEditing
	e.editingID = post.ID
	e.draft = post.Clone()
	return e.draft.Clone()
}

// Cancel discards the draft and returns to idle.
func (e *EditorService) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateIdle
	e.editingID = ""
	e.draft = blankDraft()
}

// UpdateDraft overlays the given fields onto the draft. Only the transient
// draft changes; nothing is persisted.
func (e *EditorService) UpdateDraft(fields DraftFields) models.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	if fields.Title != nil {
		e.draft.Title = *fields.Title
	}
	if fields.Slug != nil {
		e.draft.Slug = *fields.Slug
	}
	if fields.Date != nil {
		e.draft.Date = *fields.Date
	}
	if fields.CoverURL != nil {
		e.draft.CoverURL = *fields.CoverURL
	}
	if fields.Tags != nil {
		e.draft.Tags = append([]string(nil), fields.Tags...)
	}
	if fields.Body != nil {
		e.draft.Body = *fields.Body
	}
	return e.draft.Clone()
}

// DraftFields carries partial edits; nil pointers leave a field untouched.
type DraftFields struct {
	Title    *string  `json:"title"`
	Slug     *string  `json:"slug"`
	Date     *string  `json:"date"`
	CoverURL *string  `json:"coverUrl"`
	Tags     []string `json:"tags"`
	Body     *string  `json:"body"`
}

// Commit validates the draft and hands it to the repository: create when the
// editor was opened with StartNew, update when opened with StartEdit. On
// success the editor returns to idle. A blank trimmed title leaves the state
// machine untouched and reports ErrTitleRequired.
func (e *EditorService) Commit() (*models.Post, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateIdle {
		return nil, ErrNoActiveDraft
	}
	if strings.TrimSpace(e.draft.Title) == "" {
		return nil, ErrTitleRequired
	}

	var committed *models.Post
	switch e.state {
	case StateCreating:
		committed = e.repo.CreatePost(e.draft)
	case StateEditing:
		draft := e.draft.Clone()
		draft.ID = e.editingID
		if err := e.repo.UpdatePost(draft); err != nil {
			return nil, err
		}
		updated, err := e.repo.GetPost(e.editingID)
		if err != nil {
			return nil, err
		}
		committed = updated
	}
	if committed == nil {
		return nil, ErrTitleRequired
	}

	e.state = StateIdle
	e.editingID = ""
	e.draft = blankDraft()
	return committed, nil
}

// State reports the current lifecycle state.
func (e *EditorService) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// EditingID reports the id of the post being edited, empty otherwise.
func (e *EditorService) EditingID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editingID
}

// Draft returns a copy of the current draft.
func (e *EditorService) Draft() models.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}
