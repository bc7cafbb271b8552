package storage

import "saminams/app/models"

// MemoryStore is an in-memory Store used by tests and by callers that want
// the repository without a durable substrate.
type MemoryStore struct {
	posts   []models.Post
	threads map[string][]models.Comment

	// Save counters, handy for asserting that mutations persist.
	PostSaves    int
	CommentSaves int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{threads: map[string][]models.Comment{}}
}

func (s *MemoryStore) LoadPosts() []models.Post {
	return append([]models.Post(nil), s.posts...)
}

func (s *MemoryStore) SavePosts(posts []models.Post) {
	s.posts = append([]models.Post(nil), posts...)
	s.PostSaves++
}

func (s *MemoryStore) LoadComments() map[string][]models.Comment {
	out := make(map[string][]models.Comment, len(s.threads))
	for id, thread := range s.threads {
		out[id] = append([]models.Comment(nil), thread...)
	}
	return out
}

func (s *MemoryStore) SaveComments(threads map[string][]models.Comment) {
	out := make(map[string][]models.Comment, len(threads))
	for id, thread := range threads {
		out[id] = append([]models.Comment(nil), thread...)
	}
	s.threads = out
	s.CommentSaves++
}
