package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapse = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe token from a title: lower-case, strip anything
// outside [a-z0-9\s-], trim, collapse whitespace runs to a hyphen, cut at 80.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugCollapse.ReplaceAllString(s, "-")
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}

// NormalizeTags trims every tag, drops empties, and lower-cases the rest.
// Order is preserved for display; it carries no identity.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, strings.ToLower(t))
	}
	return out
}

// Today returns the current calendar date in the stored "YYYY-MM-DD" form.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title cannot be blank")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date == "" {
		p.Date = Today()
	}
}

// Normalize applies the slug and tag rules shared by create and update.
// A blank slug is re-derived from the title; a supplied slug is kept as-is.
func (p *Post) Normalize() {
	if p.Slug == "" {
		p.Slug = Slugify(strings.TrimSpace(p.Title))
	}
	p.Tags = NormalizeTags(p.Tags)
}

// HasTag reports whether the post's normalized tag set contains tag exactly.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slice storage with the receiver.
func (p Post) Clone() Post {
	c := p
	c.Tags = append([]string(nil), p.Tags...)
	return c
}
