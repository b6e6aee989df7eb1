package search

import (
	"strings"

	"github.com/lexwire/lexwire/internal/newsapi"
)

// Engine filters articles by case-insensitive substring match on title and
// description. This is the default filter behind the feed view's search box.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Filter returns the subset of articles whose title or description contains
// query as a case-insensitive substring, in feed order. An empty query
// returns the input unchanged.
func (e *Engine) Filter(articles []newsapi.Article, query string) []newsapi.Article {
	if query == "" {
		return articles
	}

	needle := strings.ToLower(query)
	matched := make([]newsapi.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Description), needle) {
			matched = append(matched, a)
		}
	}
	return matched
}
