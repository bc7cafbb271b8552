// Package repositories owns the in-memory post and comment collections and
// keeps them synchronized with durable storage. Every mutation re-saves the
// affected record(s) through the Store before returning.
package repositories

import (
	"errors"
	"strings"
	"sync"

	"saminams/app/models"
	"saminams/app/storage"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrTitleRequired = errors.New("title is required")
)

// ContentRepository is the single writer for posts and comment threads.
type ContentRepository struct {
	mu       sync.RWMutex
	store    storage.Store
	posts    []models.Post
	comments map[string][]models.Comment
}

// NewContentRepository loads both collections from the store. Corrupt or
// absent records come back empty, so construction never fails.
func NewContentRepository(store storage.Store) *ContentRepository {
	return &ContentRepository{
		store:    store,
		posts:    store.LoadPosts(),
		comments: store.LoadComments(),
	}
}

// CreatePost publishes a draft as a new post: fresh id and today's date where
// missing, slug derived from the title when none was supplied, tags
// normalized, prepended so insertion order is newest-first. The title is
// stored as given; a draft whose trimmed title is empty is rejected silently
// and nothing is stored.
func (r *ContentRepository) CreatePost(draft models.Post) *models.Post {
	if strings.TrimSpace(draft.Title) == "" {
		return nil
	}

	post := draft.Clone()
	post.BeforeCreate()
	post.Normalize()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]models.Post{post}, r.posts...)
	r.store.SavePosts(r.posts)
	return &post
}

// UpdatePost replaces the stored post with the same id, keeping its position
// in the collection. Slug and tags are re-normalized exactly as on create, so
// a slug blanked by the author is re-derived from the title. A blank trimmed
// title is rejected with ErrTitleRequired; the stored post is untouched.
func (r *ContentRepository) UpdatePost(post models.Post) error {
	if strings.TrimSpace(post.Title) == "" {
		return ErrTitleRequired
	}

	updated := post.Clone()
	updated.Normalize()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == updated.ID {
			r.posts[i] = updated
			r.store.SavePosts(r.posts)
			return nil
		}
	}
	return ErrNotFound
}

// DeletePost removes the post and its entire comment thread. Deleting an
// unknown id is a no-op.
func (r *ContentRepository) DeletePost(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.posts[:0]
	removed := false
	for _, p := range r.posts {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return
	}
	r.posts = kept
	delete(r.comments, id)
	r.store.SavePosts(r.posts)
	r.store.SaveComments(r.comments)
}

// GetPost returns a copy of the post with the given id.
func (r *ContentRepository) GetPost(id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			c := p.Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// GetBySlug returns the first post carrying the slug. Slug uniqueness is not
// enforced anywhere, so later posts with the same slug are shadowed.
func (r *ContentRepository) GetBySlug(slug string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.Slug == slug {
			c := p.Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Posts returns a snapshot of the collection in insertion order.
func (r *ContentRepository) Posts() []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Post, len(r.posts))
	for i, p := range r.posts {
		out[i] = p.Clone()
	}
	return out
}

// AddComment prepends a comment to the post's thread, creating the thread if
// absent. Blank text (after trim) is a no-op returning nil; a blank name is
// stored as "Guest".
func (r *ContentRepository) AddComment(postID, name, text string) *models.Comment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	comment := models.Comment{Name: name, Text: text}
	comment.BeforeCreate()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[postID] = append([]models.Comment{comment}, r.comments[postID]...)
	r.store.SaveComments(r.comments)
	return &comment
}

// Comments returns the post's thread, newest first.
func (r *ContentRepository) Comments(postID string) []models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Comment(nil), r.comments[postID]...)
}

// CommentCount reports the length of the post's thread.
func (r *ContentRepository) CommentCount(postID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.comments[postID])
}

// Query returns the posts passing the filter, sorted per its criterion.
func (r *ContentRepository) Query(f QueryFilter) []models.Post {
	return Filter(r.Posts(), f)
}

// DistinctTags returns the sorted, deduplicated union of all post tags.
func (r *ContentRepository) DistinctTags() []string {
	return DistinctTags(r.Posts())
}
