package tui

import "github.com/lexwire/lexwire/internal/newsapi"

// feedLoadedMsg carries a completed fetch. seq ties the result to the fetch
// that requested it so a stale response can never clobber a newer one.
type feedLoadedMsg struct {
	seq      int
	category string
	articles []newsapi.Article
	err      error
}

type articleRenderedMsg struct {
	content string
}

type articleOpenedMsg struct {
	err error
}

type errorMsg struct {
	err error
}
