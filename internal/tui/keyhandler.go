package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexwire/lexwire/internal/config"
)

type KeyHandler struct {
	app  *App
	keys config.KeyBindings
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, keys: cfg.Keys.Bindings}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return kh.app, tea.Quit
	}

	if kh.app.searchInput.Focused() {
		return kh.handleSearchInput(msg)
	}

	if kh.app.categoryBar.filterMode {
		return kh.handleCategoryBar(msg)
	}

	switch kh.app.view {
	case ViewFeed:
		return kh.handleFeedView(msg)
	case ViewReader:
		return kh.handleReaderView(msg)
	}

	return kh.app, nil
}

func (kh *KeyHandler) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case "esc":
		a.searchInput.Blur()
		a.searchInput.SetValue("")
		a.setSearchQuery("")
		return a, nil
	case "enter", "tab", "down":
		// Keep the query, move focus back to the list
		a.searchInput.Blur()
		return a, nil
	default:
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		a.setSearchQuery(a.searchInput.Value())
		return a, cmd
	}
}

func (kh *KeyHandler) handleCategoryBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case "esc", kh.keys.Filter:
		a.categoryBar.filterMode = false
		return a, nil
	case "left", "h", "shift+tab":
		a.categoryBar.moveCursor(-1)
		return a, nil
	case "right", "l", "tab":
		a.categoryBar.moveCursor(1)
		return a, nil
	case "enter", " ":
		a.categoryBar.filterMode = false
		selected := a.categoryBar.selected()
		if selected == a.categoryBar.active {
			return a, nil
		}
		return a, a.fetchCategory(selected)
	case kh.keys.Quit:
		return a, tea.Quit
	default:
		return a, nil
	}
}

func (kh *KeyHandler) handleFeedView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case kh.keys.Quit:
		return a, tea.Quit
	case kh.keys.Search:
		a.searchInput.Focus()
		return a, nil
	case kh.keys.Filter:
		a.categoryBar.filterMode = true
		a.categoryBar.cursor = 0
		return a, nil
	case kh.keys.Refresh:
		return a, a.fetchCategory(a.categoryBar.active)
	case kh.keys.Bookmark:
		if article, ok := a.selectedArticle(); ok {
			a.toggleBookmark(article)
		}
		return a, nil
	case kh.keys.Share:
		if article, ok := a.selectedArticle(); ok {
			return a, a.shareArticle(article)
		}
		return a, nil
	case kh.keys.Open:
		if article, ok := a.selectedArticle(); ok {
			return a, a.openArticle(article)
		}
		return a, nil
	case "enter":
		article, ok := a.selectedArticle()
		if !ok {
			return a, nil
		}
		a.currentArticle = &article
		a.view = ViewReader
		a.loadingArticle = true
		return a, tea.Batch(a.renderArticle(article), a.spinner.Tick)
	default:
		var cmd tea.Cmd
		a.articleList, cmd = a.articleList.Update(msg)
		return a, cmd
	}
}

func (kh *KeyHandler) handleReaderView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case kh.keys.Back, kh.keys.Quit:
		a.view = ViewFeed
		a.currentArticle = nil
		a.loadingArticle = false
		return a, nil
	case kh.keys.Bookmark:
		if a.currentArticle != nil {
			a.toggleBookmark(*a.currentArticle)
		}
		return a, nil
	case kh.keys.Share:
		if a.currentArticle != nil {
			return a, a.shareArticle(*a.currentArticle)
		}
		return a, nil
	case kh.keys.Open:
		if a.currentArticle != nil {
			return a, a.openArticle(*a.currentArticle)
		}
		return a, nil
	default:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}
}

// HelpForCurrentView returns the short key hints for the status bar.
func (kh *KeyHandler) HelpForCurrentView() []string {
	if kh.app.searchInput.Focused() {
		return []string{"type to filter", "enter keep", "esc clear"}
	}
	if kh.app.categoryBar.filterMode {
		return []string{"←/→ choose category", "enter apply", "esc cancel"}
	}

	switch kh.app.view {
	case ViewReader:
		return []string{
			kh.keys.Back + " back",
			kh.keys.Bookmark + " bookmark",
			kh.keys.Share + " share",
			kh.keys.Open + " open",
		}
	default:
		return []string{
			kh.keys.Search + " search",
			kh.keys.Filter + " categories",
			kh.keys.Refresh + " refresh",
			kh.keys.Bookmark + " bookmark",
			kh.keys.Share + " share",
			"enter read",
			kh.keys.Quit + " quit",
		}
	}
}
