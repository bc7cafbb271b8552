package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"saminams/app/markup"
	"saminams/app/models"
	"saminams/app/repositories"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	repo *repositories.ContentRepository
	log  zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(repo *repositories.ContentRepository, log zerolog.Logger) *PostController {
	return &PostController{repo: repo, log: log}
}

// Index lists posts, filtered and sorted by the q, tag, and sort params.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	filter := repositories.QueryFilter{
		Text: r.URL.Query().Get("q"),
		Tag:  r.URL.Query().Get("tag"),
		Sort: r.URL.Query().Get("sort"),
	}

	posts := pc.repo.Query(filter)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"total": len(posts),
	})
}

// Show returns a single post with its thread and comment count.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.repo.GetPost(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"post":         post,
		"comments":     pc.repo.Comments(post.ID),
		"commentCount": pc.repo.CommentCount(post.ID),
	})
}

// ShowHTML returns the post body rendered to a safe HTML fragment.
func (pc *PostController) ShowHTML(w http.ResponseWriter, r *http.Request) {
	post, err := pc.repo.GetPost(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(markup.Sanitize(markup.Render(post.Body))))
}

// Create publishes a new post from the JSON payload.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.Post
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	post := pc.repo.CreatePost(draft)
	if post == nil {
		writeError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	pc.log.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("post created")
	writeJSON(w, http.StatusCreated, post)
}

// Update replaces the post with the path id using the JSON payload.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	post.ID = mux.Vars(r)["id"]

	if err := pc.repo.UpdatePost(post); err != nil {
		if errors.Is(err, repositories.ErrTitleRequired) {
			writeError(w, http.StatusUnprocessableEntity, "title is required")
			return
		}
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	updated, err := pc.repo.GetPost(post.ID)
	if err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes the post and its thread. Deleting twice is fine.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	pc.repo.DeletePost(id)
	pc.log.Info().Str("id", id).Msg("post deleted")
	w.WriteHeader(http.StatusNoContent)
}

// Tags returns the distinct tags across all posts.
func (pc *PostController) Tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": pc.repo.DistinctTags()})
}
