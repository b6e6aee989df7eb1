package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexwire/lexwire/internal/config"
	"github.com/lexwire/lexwire/internal/newsapi"
)

// fakeLoader records every requested tag and answers from a canned feed.
type fakeLoader struct {
	tags     []string
	articles []newsapi.Article
	err      error
}

func (f *fakeLoader) LoadFeed(_ context.Context, tag string) ([]newsapi.Article, error) {
	f.tags = append(f.tags, tag)
	if f.err != nil {
		return newsapi.FallbackFeed(time.Now()), f.err
	}
	return f.articles, nil
}

func testArticles() []newsapi.Article {
	now := time.Now()
	return []newsapi.Article{
		{ID: "1", Title: "Merger Cleared", Description: "Regulators approve the deal", Tags: []string{"Corporate"}, PublishedAt: now.Add(-2 * time.Hour)},
		{ID: "2", Title: "Emissions Ruling", Description: "Court upholds the cap", Tags: []string{"Environmental"}, PublishedAt: now.Add(-4 * time.Hour)},
		{ID: "3", Title: "Tariff Review", Description: "Trade panel reopens the case", Tags: []string{"Trade", "Corporate"}, PublishedAt: now.Add(-6 * time.Hour)},
	}
}

func newTestApp(loader FeedLoader) *App {
	app := NewApp(loader, config.TestConfig())
	app.width = 100
	app.height = 40
	return app
}

func loadedMsg(cmd tea.Cmd) feedLoadedMsg {
	msg, ok := cmd().(feedLoadedMsg)
	if !ok {
		panic("command did not produce a feed result")
	}
	return msg
}

func TestLoadFeedTagScoping(t *testing.T) {
	loader := &fakeLoader{articles: testArticles()}
	app := newTestApp(loader)

	// "all" maps to an unscoped request, everything else passes through
	app.loadFeed(1, CategoryAll)()
	app.loadFeed(2, "Corporate")()
	app.loadFeed(3, CategoryAll)()

	assert.Equal(t, []string{"", "Corporate", ""}, loader.tags)
}

func TestFeedLoadedPopulatesList(t *testing.T) {
	loader := &fakeLoader{articles: testArticles()}
	app := newTestApp(loader)

	cmd := app.fetchCategory(CategoryAll)
	require.NotNil(t, cmd)
	assert.True(t, app.loading)

	msg := loadedMsg(app.loadFeed(app.fetchSeq, CategoryAll))
	app.Update(msg)

	assert.False(t, app.loading)
	assert.Len(t, app.articleList.Items(), 3)
	assert.Equal(t, []string{"Corporate", "Environmental", "Trade"}, app.categories)
}

func TestStaleFeedResponseDiscarded(t *testing.T) {
	loader := &fakeLoader{articles: testArticles()}
	app := newTestApp(loader)

	app.fetchCategory(CategoryAll)
	staleSeq := app.fetchSeq
	app.fetchCategory("Corporate")

	// The older response arrives after the newer request was issued
	stale := feedLoadedMsg{seq: staleSeq, category: CategoryAll, articles: testArticles()}
	app.Update(stale)

	assert.True(t, app.loading, "stale response must not settle the newer fetch")
	assert.Empty(t, app.articleList.Items())

	fresh := feedLoadedMsg{seq: app.fetchSeq, category: "Corporate", articles: testArticles()[:1]}
	app.Update(fresh)

	assert.False(t, app.loading)
	assert.Len(t, app.articleList.Items(), 1)
}

func TestFeedErrorKeepsFallbackVisible(t *testing.T) {
	loader := &fakeLoader{err: errors.New("connection refused")}
	app := newTestApp(loader)

	app.fetchCategory(CategoryAll)
	msg := loadedMsg(app.loadFeed(app.fetchSeq, CategoryAll))
	app.Update(msg)

	assert.Error(t, app.err)
	assert.Len(t, app.articleList.Items(), 4, "fallback feed still renders alongside the error banner")
}

func TestSearchQueryFiltersList(t *testing.T) {
	loader := &fakeLoader{articles: testArticles()}
	app := newTestApp(loader)

	app.fetchCategory(CategoryAll)
	app.Update(loadedMsg(app.loadFeed(app.fetchSeq, CategoryAll)))

	app.setSearchQuery("merger")
	require.Len(t, app.articleList.Items(), 1)
	item := app.articleList.Items()[0].(articleItem)
	assert.Equal(t, "Merger Cleared", item.article.Title)

	// Clearing the query restores the full feed unchanged
	app.setSearchQuery("")
	assert.Len(t, app.articleList.Items(), 3)
}

func TestToggleBookmark(t *testing.T) {
	loader := &fakeLoader{articles: testArticles()}
	app := newTestApp(loader)

	app.fetchCategory(CategoryAll)
	app.Update(loadedMsg(app.loadFeed(app.fetchSeq, CategoryAll)))

	article := testArticles()[0]
	app.toggleBookmark(article)
	assert.True(t, app.bookmarks[article.ID])

	item := app.articleList.Items()[0].(articleItem)
	assert.True(t, item.bookmarked)

	app.toggleBookmark(article)
	assert.False(t, app.bookmarks[article.ID])
}

func TestViewRendersWithoutArticles(t *testing.T) {
	loader := &fakeLoader{}
	app := newTestApp(loader)

	app.fetchCategory(CategoryAll)
	app.Update(loadedMsg(app.loadFeed(app.fetchSeq, CategoryAll)))

	out := app.View()
	assert.Contains(t, out, MsgNoArticles)
}
