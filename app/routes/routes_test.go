package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saminams/app/models"
	"saminams/app/repositories"
	"saminams/app/services"
	"saminams/app/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *repositories.ContentRepository) {
	t.Helper()
	repo := repositories.NewContentRepository(storage.NewMemoryStore())
	editor := services.NewEditorService(repo)
	srv := httptest.NewServer(SetupRoutes(repo, editor, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, repo
}

func doJSON(t *testing.T, method, url string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestPostLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	// Publish.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/posts", map[string]interface{}{
		"title": "Hello, Amsterdam",
		"tags":  []string{" Arrival ", "first-week"},
		"body":  "*I made it.*",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Post
	decode(t, resp, &created)
	assert.Equal(t, "hello-amsterdam", created.Slug)
	assert.Equal(t, []string{"arrival", "first-week"}, created.Tags)

	// Read back.
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/posts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var shown struct {
		Post         models.Post      `json:"post"`
		Comments     []models.Comment `json:"comments"`
		CommentCount int              `json:"commentCount"`
	}
	decode(t, resp, &shown)
	assert.Equal(t, created.ID, shown.Post.ID)
	assert.Zero(t, shown.CommentCount)

	// Edit the title without touching the slug field.
	edited := created
	edited.Title = "Hi!!"
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/posts/"+created.ID, edited)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Post
	decode(t, resp, &updated)
	assert.Equal(t, "Hi!!", updated.Title)
	assert.Equal(t, "hello-amsterdam", updated.Slug)

	// Delete, twice: the second is a no-op, both succeed.
	for i := 0; i < 2; i++ {
		resp = doJSON(t, http.MethodDelete, srv.URL+"/api/posts/"+created.ID, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/posts/"+created.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreatePostValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/posts", map[string]string{"title": "   "})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdatePostValidation(t *testing.T) {
	srv, repo := newTestServer(t)
	post := repo.CreatePost(models.Post{Title: "Keep me"})

	// Blanking the title over HTTP must not reach storage.
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/posts/"+post.ID, map[string]string{"title": "   "})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	stored, err := repo.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", stored.Title)
}

func TestPostFilters(t *testing.T) {
	srv, repo := newTestServer(t)
	repo.CreatePost(models.Post{Title: "Canal Ride", Date: "2025-03-01", Tags: []string{"bikes"}})
	repo.CreatePost(models.Post{Title: "Apple Pie", Date: "2025-05-10", Tags: []string{"food"}})
	repo.CreatePost(models.Post{Title: "Market Day", Date: "2025-04-20", Tags: []string{"food"}})

	var listing struct {
		Posts []models.Post `json:"posts"`
		Total int           `json:"total"`
	}

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/posts?tag=food&sort=old", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &listing)
	require.Equal(t, 2, listing.Total)
	assert.Equal(t, "Market Day", listing.Posts[0].Title)
	assert.Equal(t, "Apple Pie", listing.Posts[1].Title)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/posts?q=canal", nil)
	decode(t, resp, &listing)
	require.Equal(t, 1, listing.Total)
	assert.Equal(t, "Canal Ride", listing.Posts[0].Title)
}

func TestTagsEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	repo.CreatePost(models.Post{Title: "a", Tags: []string{"food", "bikes"}})
	repo.CreatePost(models.Post{Title: "b", Tags: []string{"food"}})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/tags", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Tags []string `json:"tags"`
	}
	decode(t, resp, &got)
	assert.Equal(t, []string{"bikes", "food"}, got.Tags)
}

func TestCommentsEndpoints(t *testing.T) {
	srv, repo := newTestServer(t)
	post := repo.CreatePost(models.Post{Title: "p"})

	base := fmt.Sprintf("%s/api/posts/%s/comments", srv.URL, post.ID)

	// Blank name defaults to Guest.
	resp := doJSON(t, http.MethodPost, base, map[string]string{"name": " ", "text": "first!"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var comment models.Comment
	decode(t, resp, &comment)
	assert.Equal(t, models.GuestName, comment.Name)

	// Blank text is rejected without mutating the thread.
	resp = doJSON(t, http.MethodPost, base, map[string]string{"name": "Sam", "text": "  "})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var thread struct {
		Comments     []models.Comment `json:"comments"`
		CommentCount int              `json:"commentCount"`
	}
	decode(t, resp, &thread)
	assert.Equal(t, 1, thread.CommentCount)

	// Unknown post.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/posts/ghost/comments", map[string]string{"text": "hi"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRenderedBodyEndpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	post := repo.CreatePost(models.Post{
		Title: "p",
		Body:  "**a** *b* `c`\nd <script>alert(1)</script>",
	})

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/posts/%s/html", srv.URL, post.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "<strong>a</strong>")
	assert.Contains(t, html, "<em>b</em>")
	assert.Contains(t, html, `<code class="inline-code">c</code>`)
	assert.Contains(t, html, "<br/>")
	assert.NotContains(t, html, "<script>")
}

func TestEditorEndpoints(t *testing.T) {
	srv, repo := newTestServer(t)

	var status struct {
		State     string      `json:"state"`
		EditingID string      `json:"editingId"`
		Draft     models.Post `json:"draft"`
	}

	// Idle commit conflicts.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/editor/commit", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Start a draft, fill it in, commit.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/editor/new", nil)
	decode(t, resp, &status)
	assert.Equal(t, "creating", status.State)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/editor/draft", map[string]interface{}{
		"title": "From the editor",
		"tags":  []string{"Meta"},
	})
	decode(t, resp, &status)
	assert.Equal(t, "From the editor", status.Draft.Title)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/editor/commit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var committed models.Post
	decode(t, resp, &committed)
	assert.Equal(t, "from-the-editor", committed.Slug)
	require.Len(t, repo.Posts(), 1)

	// Blank title is a validation failure and leaves the draft alone.
	doJSON(t, http.MethodPost, srv.URL+"/api/editor/new", nil).Body.Close()
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/editor/commit", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/editor/draft", nil)
	decode(t, resp, &status)
	assert.Equal(t, "creating", status.State)

	// Edit an existing post through the editor.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/editor/edit/"+committed.ID, nil)
	decode(t, resp, &status)
	assert.Equal(t, "editing", status.State)
	assert.Equal(t, committed.ID, status.EditingID)

	doJSON(t, http.MethodPut, srv.URL+"/api/editor/draft", map[string]string{"title": "Edited title"}).Body.Close()
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/editor/commit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &committed)
	assert.Equal(t, "Edited title", committed.Title)
	assert.Len(t, repo.Posts(), 1)

	// Cancel drops back to idle.
	doJSON(t, http.MethodPost, srv.URL+"/api/editor/new", nil).Body.Close()
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/editor/cancel", nil)
	decode(t, resp, &status)
	assert.Equal(t, "idle", status.State)
}
