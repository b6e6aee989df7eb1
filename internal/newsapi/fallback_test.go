package newsapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFallbackFeed(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	articles := FallbackFeed(now)

	assert.Len(t, articles, 4)

	offsets := []time.Duration{2 * time.Hour, 4 * time.Hour, 6 * time.Hour, 8 * time.Hour}
	for i, a := range articles {
		assert.Equal(t, now.Add(-offsets[i]), a.PublishedAt)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Tags)
		assert.NotEmpty(t, a.Source.Name)
		assert.NotEmpty(t, a.Source.URL)
	}
}

func TestFallbackFeedTags(t *testing.T) {
	articles := FallbackFeed(time.Now())

	wantTags := [][]string{
		{"Corporate", "Environmental"},
		{"Corporate", "Tax Law"},
		{"International", "Trade"},
		{"Criminal", "Legislation"},
	}

	for i, a := range articles {
		assert.Equal(t, wantTags[i], a.Tags, "article %s", a.ID)
	}
}

func TestFallbackFeedStableIDs(t *testing.T) {
	first := FallbackFeed(time.Now())
	second := FallbackFeed(time.Now().Add(time.Hour))

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Title, second[i].Title)
	}
}
