package tui

import "fmt"

// Canonical short status messages used across the app.
const (
	MsgLoadingFeed  = "Loading feed…"
	MsgNoArticles   = "No articles"
	MsgNoMatches    = "No matches"
	MsgBookmarked   = "Bookmarked"
	MsgUnbookmarked = "Bookmark removed"
	MsgShared       = "Shared article"
)

func MsgArticleCount(n int) string {
	if n == 1 {
		return "1 article"
	}
	return fmt.Sprintf("%d articles", n)
}

func MsgFeedUnavailable(reason string) string {
	return fmt.Sprintf("Live feed unavailable, showing demo articles (%s)", reason)
}
