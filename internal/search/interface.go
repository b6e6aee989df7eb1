package search

import "github.com/lexwire/lexwire/internal/newsapi"

// Filterer narrows a loaded feed to the articles matching a query.
// An empty query always returns the full input.
type Filterer interface {
	Filter(articles []newsapi.Article, query string) []newsapi.Article
}

// UpdateListener can be implemented by engines that maintain an index and
// want to be notified when the feed is replaced.
type UpdateListener interface {
	OnFeedReplaced(articles []newsapi.Article)
}

// NewFilterer returns the engine selected by name. Unknown names fall back
// to the substring engine.
func NewFilterer(engine string) Filterer {
	if engine == "bleve" {
		if be, err := NewBleveEngine(); err == nil {
			return be
		}
	}
	return NewEngine()
}
