package models

import "time"

// Post is a single dated entry. Date stays the ISO "YYYY-MM-DD" string it
// is entered and stored as; ordering compares the strings directly.
type Post struct {
	ID       string   `json:"id" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Slug     string   `json:"slug"`
	Date     string   `json:"date"`
	CoverURL string   `json:"coverUrl,omitempty"`
	Tags     []string `json:"tags"`
	Body     string   `json:"body"`
}

// Comment is one entry in a post's thread. Comments only exist inside the
// thread map keyed by post id; deleting the post drops the whole thread.
type Comment struct {
	ID   string    `json:"id" validate:"required"`
	Name string    `json:"name" validate:"required"`
	Text string    `json:"text" validate:"required"`
	When time.Time `json:"when" validate:"required"`
}
