package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"saminams/app/repositories"
)

// CommentController handles HTTP requests for comment threads
type CommentController struct {
	repo *repositories.ContentRepository
	log  zerolog.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(repo *repositories.ContentRepository, log zerolog.Logger) *CommentController {
	return &CommentController{repo: repo, log: log}
}

// Index returns a post's thread, newest first.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]
	if _, err := cc.repo.GetPost(postID); err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"comments":     cc.repo.Comments(postID),
		"commentCount": cc.repo.CommentCount(postID),
	})
}

// Create appends a comment to the post's thread.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]
	if _, err := cc.repo.GetPost(postID); err != nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	var payload struct {
		Name string `json:"name"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	comment := cc.repo.AddComment(postID, payload.Name, payload.Text)
	if comment == nil {
		writeError(w, http.StatusUnprocessableEntity, "text is required")
		return
	}

	cc.log.Info().Str("postId", postID).Str("commentId", comment.ID).Msg("comment added")
	writeJSON(w, http.StatusCreated, comment)
}
