package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lexwire/lexwire/internal/newsapi"
)

// articleItem adapts an article for the bubbles list.
type articleItem struct {
	article    newsapi.Article
	bookmarked bool
	maxDesc    int
}

func (i articleItem) Title() string {
	if i.bookmarked {
		return BookmarkedItemStyle.Render("★ " + i.article.Title)
	}
	return i.article.Title
}

func (i articleItem) Description() string {
	maxDesc := i.maxDesc
	if maxDesc <= 0 {
		maxDesc = 80
	}
	desc := truncateEnd(i.article.Description, maxDesc)

	meta := TimeStyle.Render(" • " + relativeTime(i.article.PublishedAt, time.Now()))
	if i.article.Source.Name != "" {
		meta += TimeStyle.Render(" • " + i.article.Source.Name)
	}
	if len(i.article.Tags) > 0 {
		meta += TagStyle.Render(" • " + strings.Join(i.article.Tags, ", "))
	}

	return lipgloss.NewStyle().Foreground(MutedColor).Render(desc) + meta
}

func (i articleItem) FilterValue() string {
	return i.article.Title + " " + i.article.Description
}
