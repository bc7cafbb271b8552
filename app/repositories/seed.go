package repositories

import "saminams/app/models"

// SeedSample inserts the starter post when the collection is empty. Returns
// the created post, or nil when posts already exist.
func (r *ContentRepository) SeedSample() *models.Post {
	r.mu.RLock()
	empty := len(r.posts) == 0
	r.mu.RUnlock()
	if !empty {
		return nil
	}

	return r.CreatePost(models.Post{
		Title:    "Hello, Amsterdam",
		Slug:     "hello-amsterdam",
		CoverURL: "https://images.unsplash.com/photo-1473959383410-b635452efc06?q=80&w=1200&auto=format&fit=crop",
		Tags:     []string{"arrival", "first-week"},
		Body: "*I made it.* Bikes everywhere, clouds playing nice.\n\n" +
			"First stop: **Winkel 43** for the apple pie. Then a sunset loop along the Jordaan.\n\n" +
			"Plans: museums, markets, and mapping my favorite stoops.",
	})
}
