package tui

import "github.com/lexwire/lexwire/internal/newsapi"

// deriveCategories returns the distinct tags across the loaded feed in
// first-appearance order. Always recomputed from the current feed, never
// cached across fetches.
func deriveCategories(articles []newsapi.Article) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, a := range articles {
		for _, tag := range a.Tags {
			if !seen[tag] {
				seen[tag] = true
				categories = append(categories, tag)
			}
		}
	}
	return categories
}
