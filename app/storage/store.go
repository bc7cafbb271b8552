// Package storage persists the two top-level blog records. Each record is a
// whole-collection JSON payload under a versioned key; every save overwrites
// the previous payload. Reads fail soft: a missing key or a payload that no
// longer unmarshals yields an empty collection, never an error.
package storage

import "saminams/app/models"

const (
	// Versioned record keys, mirroring the v1 payload schema.
	PostsKey    = "blog:posts:v1"
	CommentsKey = "blog:comments:v1"
)

// Store is the boundary the content repository persists through. Writes are
// fire-and-forget; implementations log failures but do not surface them.
type Store interface {
	LoadPosts() []models.Post
	SavePosts(posts []models.Post)
	LoadComments() map[string][]models.Comment
	SaveComments(threads map[string][]models.Comment)
}
