package newsapi

import (
	"time"
)

// Article is a single legal-news item as delivered by the API.
type Article struct {
	ID          string    `json:"articleId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      Source    `json:"source"`
}

// Source identifies the publication an article came from.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// envelope is the wire format wrapping every feed response.
type envelope struct {
	Status string `json:"status"`
	Data   struct {
		Articles []Article `json:"articles"`
		Count    int       `json:"count"`
	} `json:"data"`
}
