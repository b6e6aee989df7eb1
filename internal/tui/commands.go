package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexwire/lexwire/internal/debuglog"
	"github.com/lexwire/lexwire/internal/newsapi"
)

// loadFeed fetches the feed for category. The sequence number travels with
// the result so the app can discard responses that were overtaken by a
// later category switch.
func (a *App) loadFeed(seq int, category string) tea.Cmd {
	tag := category
	if category == CategoryAll {
		tag = ""
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		articles, err := a.loader.LoadFeed(ctx, tag)
		if err != nil {
			debuglog.Warnf("feed load failed for category %q: %v", category, err)
		}
		return feedLoadedMsg{seq: seq, category: category, articles: articles, err: err}
	}
}

func (a *App) renderArticle(article newsapi.Article) tea.Cmd {
	return func() tea.Msg {
		var content strings.Builder
		content.WriteString(fmt.Sprintf("# %s\n\n", article.Title))
		content.WriteString(fmt.Sprintf("*%s • %s*\n\n",
			article.Source.Name, article.PublishedAt.Format(time.RFC1123)))

		if len(article.Tags) > 0 {
			content.WriteString(fmt.Sprintf("`%s`\n\n", strings.Join(article.Tags, "` `")))
		}

		if article.Source.URL != "" {
			content.WriteString(fmt.Sprintf("[Read Online](%s)\n\n", article.Source.URL))
		}

		content.WriteString("---\n\n")
		content.WriteString(article.Description)

		r, err := a.getRenderer()
		if err != nil {
			return articleRenderedMsg{content: "Error initializing renderer: " + err.Error()}
		}

		rendered, err := r.Render(content.String())
		if err != nil {
			return articleRenderedMsg{content: fmt.Sprintf(
				"# Error\n\nFailed to render article: %s\n\nPress Escape to go back.", err.Error())}
		}

		return articleRenderedMsg{content: rendered}
	}
}

// shareArticle hands the article off to the OS. Missing capabilities are a
// silent no-op, so this never produces an error message.
func (a *App) shareArticle(article newsapi.Article) tea.Cmd {
	return func() tea.Msg {
		a.launcher.Share(article)
		return nil
	}
}

func (a *App) openArticle(article newsapi.Article) tea.Cmd {
	return func() tea.Msg {
		if err := a.launcher.OpenURL(article.Source.URL); err != nil {
			return articleOpenedMsg{err: wrapErr("opening article", err)}
		}
		return articleOpenedMsg{}
	}
}
