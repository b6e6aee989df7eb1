package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/lexwire/lexwire/internal/config"
	"github.com/lexwire/lexwire/internal/debuglog"
	"github.com/lexwire/lexwire/internal/newsapi"
	"github.com/lexwire/lexwire/internal/search"
	"github.com/lexwire/lexwire/internal/share"
)

// FeedLoader is the minimal API the feed view needs from the news client.
type FeedLoader interface {
	LoadFeed(ctx context.Context, tag string) ([]newsapi.Article, error)
}

// launcher abstracts the OS hand-off so tests can stub it out.
type launcher interface {
	Share(article newsapi.Article)
	OpenURL(url string) error
}

type App struct {
	config   *config.Config
	loader   FeedLoader
	filterer search.Filterer
	launcher launcher

	keyHandler  *KeyHandler
	articleList list.Model
	searchInput textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model

	view           View
	articles       []newsapi.Article
	categories     []string
	categoryBar    categoryBar
	searchQuery    string
	bookmarks      map[string]bool
	currentArticle *newsapi.Article

	loading        bool
	loadingArticle bool
	fetchSeq       int
	timeout        time.Duration
	err            error

	width  int
	height int

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(loader FeedLoader, cfg *config.Config) *App {
	articleList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	articleList.Title = "› " + AppName
	articleList.SetShowStatusBar(false)
	articleList.SetShowHelp(false)
	// The search box owns filtering; disable the list's own filter
	articleList.SetFilteringEnabled(false)

	si := textinput.New()
	si.Placeholder = "Search title and description..."
	si.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)

	vp := viewport.New(0, 0)

	app := &App{
		config:      cfg,
		loader:      loader,
		filterer:    search.NewFilterer(cfg.Search.Engine),
		launcher:    share.NewLauncher(),
		articleList: articleList,
		searchInput: si,
		spinner:     sp,
		viewport:    vp,
		view:        ViewFeed,
		categoryBar: newCategoryBar(),
		bookmarks:   make(map[string]bool),
		timeout:     cfg.API.HTTPTimeout,
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.fetchCategory(CategoryAll),
		tea.EnterAltScreen,
	)
}

// fetchCategory starts a fetch scoped to category and makes it the active
// one. Exactly one loader invocation per category change.
func (a *App) fetchCategory(category string) tea.Cmd {
	a.fetchSeq++
	a.loading = true
	a.err = nil
	a.categoryBar.active = category
	return tea.Batch(a.loadFeed(a.fetchSeq, category), a.spinner.Tick)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.articleList.SetSize(msg.Width, a.listHeight())
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 3

		inputWidth := msg.Width - 4
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if a.loading || a.loadingArticle {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case feedLoadedMsg:
		if msg.seq != a.fetchSeq {
			// A newer category was requested while this fetch was in
			// flight; its result must not replace the newer one.
			debuglog.Debugf("discarding stale feed response (seq %d, current %d)", msg.seq, a.fetchSeq)
			return a, nil
		}
		a.loading = false
		a.articles = msg.articles
		a.err = msg.err
		a.categories = deriveCategories(msg.articles)
		a.categoryBar.setCategories(a.categories)
		if ul, ok := a.filterer.(search.UpdateListener); ok {
			ul.OnFeedReplaced(msg.articles)
		}
		a.applyFilter()

	case articleRenderedMsg:
		if a.view == ViewReader {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
			a.loadingArticle = false
		}

	case articleOpenedMsg:
		if msg.err != nil {
			a.err = msg.err
		}

	case errorMsg:
		a.err = msg.err
	}

	switch a.view {
	case ViewFeed:
		newListModel, cmd := a.articleList.Update(msg)
		a.articleList = newListModel
		cmds = append(cmds, cmd)
	case ViewReader:
		switch msg.(type) {
		case tea.WindowSizeMsg, tea.MouseMsg:
			newViewport, cmd := a.viewport.Update(msg)
			a.viewport = newViewport
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// applyFilter recomputes the visible list from the loaded feed and the
// current search query. Purely local; never triggers a fetch.
func (a *App) applyFilter() {
	visible := a.filterer.Filter(a.articles, a.searchQuery)
	items := make([]list.Item, len(visible))
	for i, art := range visible {
		items[i] = articleItem{
			article:    art,
			bookmarked: a.bookmarks[art.ID],
			maxDesc:    a.config.UI.Article.MaxDescriptionLength,
		}
	}
	a.articleList.SetItems(items)
}

// selectedArticle returns the article under the cursor, if any.
func (a *App) selectedArticle() (newsapi.Article, bool) {
	item, ok := a.articleList.SelectedItem().(articleItem)
	if !ok {
		return newsapi.Article{}, false
	}
	return item.article, true
}

func (a *App) toggleBookmark(article newsapi.Article) {
	if a.bookmarks[article.ID] {
		delete(a.bookmarks, article.ID)
	} else {
		a.bookmarks[article.ID] = true
	}
	a.applyFilter()
}

func (a *App) setSearchQuery(query string) {
	a.searchQuery = query
	a.applyFilter()
}

func (a *App) listHeight() int {
	// Category bar, search line and status bar take up the chrome
	h := a.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > a.config.UI.Article.WordWrapMaxWidth {
		wordWrapWidth = a.config.UI.Article.WordWrapMaxWidth
	}
	if wordWrapWidth < a.config.UI.Article.WordWrapMinWidth {
		wordWrapWidth = a.config.UI.Article.WordWrapMinWidth
	}
	if a.width < 50 {
		wordWrapWidth = a.width - 4
		if wordWrapWidth < 20 {
			wordWrapWidth = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewFeed:
		header := HeaderStyle.Render(CompactLogo) + " " +
			renderMuted(displayName(a.categoryBar.active)+" • "+MsgArticleCount(len(a.articleList.Items())))

		searchLine := ""
		if a.searchInput.Focused() || a.searchQuery != "" {
			searchLine = a.searchInput.View()
		}

		var body string
		switch {
		case a.loading:
			body = renderCentered(a.width, a.listHeight(),
				a.spinner.View()+" "+renderMuted(MsgLoadingFeed))
		case len(a.articles) == 0:
			body = renderCentered(a.width, a.listHeight(), renderMuted(MsgNoArticles))
		case len(a.articleList.Items()) == 0:
			body = renderCentered(a.width, a.listHeight(), renderMuted(MsgNoMatches))
		default:
			body = a.articleList.View()
		}

		content = lipgloss.JoinVertical(
			lipgloss.Top,
			header,
			a.categoryBar.render(a.width),
			searchLine,
			body,
		)

	case ViewReader:
		if a.loadingArticle {
			content = renderCentered(a.width, a.height-3,
				a.spinner.View()+" "+renderMuted("Loading article…"))
		} else {
			content = a.viewport.View()
		}
	}

	status := a.getCustomStatusBar()
	if status != "" {
		separatorWidth := a.width - 2
		if separatorWidth < 0 {
			separatorWidth = 0
		}
		separator := SeparatorStyle.Render(strings.Repeat("─", separatorWidth+1))

		return lipgloss.JoinVertical(lipgloss.Top, content, separator, status)
	}

	return content
}

func (a *App) getCustomStatusBar() string {
	if a.err != nil {
		// Long loader errors carry the endpoint URL; keep both ends visible
		reason := truncateMiddle(a.err.Error(), a.width-4)
		banner := ErrorMessageStyle.Render("✗ " + reason)
		return StatusBarStyle.Width(a.width).Render(banner)
	}

	hints := a.keyHandler.HelpForCurrentView()
	if len(hints) == 0 {
		return ""
	}

	return StatusBarStyle.Width(a.width).Render(strings.Join(hints, " • "))
}
