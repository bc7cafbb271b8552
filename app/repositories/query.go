package repositories

import (
	"sort"
	"strings"

	"saminams/app/models"
)

const (
	// TagAll is the sentinel meaning "no tag restriction".
	TagAll = "all"

	SortNew = "new"
	SortOld = "old"
)

// QueryFilter narrows and orders a post listing. Zero values mean no text
// filter, no tag filter, newest first.
type QueryFilter struct {
	Text string
	Tag  string
	Sort string
}

// Filter applies text and tag restrictions, then sorts. It never mutates its
// input; both passes are recomputed on every call. Only the emptiness check
// trims the text query; matching uses it verbatim, so surrounding spaces are
// part of the substring.
func Filter(posts []models.Post, f QueryFilter) []models.Post {
	q := strings.ToLower(f.Text)
	active := strings.TrimSpace(q) != ""

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if active && !matchesText(p, q) {
			continue
		}
		if f.Tag != "" && f.Tag != TagAll && !p.HasTag(f.Tag) {
			continue
		}
		out = append(out, p)
	}

	asc := f.Sort == SortOld
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].Date < out[j].Date
		}
		return out[i].Date > out[j].Date
	})
	return out
}

// matchesText reports whether q occurs in the title, body, or any tag.
func matchesText(p models.Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Body), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// DistinctTags returns the union of all tags, alphabetical and deduplicated.
func DistinctTags(posts []models.Post) []string {
	seen := map[string]struct{}{}
	for _, p := range posts {
		for _, t := range p.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
