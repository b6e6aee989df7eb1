package share

import (
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/lexwire/lexwire/internal/debuglog"
	"github.com/lexwire/lexwire/internal/newsapi"
)

// Launcher hands articles off to the rest of the system: opening source
// URLs in a browser and copying share payloads to the clipboard.
type Launcher struct {
	opener   string
	registry *OpenerRegistry
}

func NewLauncher() *Launcher {
	registry, err := NewOpenerRegistry()
	if err != nil {
		// Continue with basic functionality if definitions can't be loaded
		registry = &OpenerRegistry{openers: map[string]OpenerDefinition{}}
	}

	l := &Launcher{registry: registry}
	l.opener = findCommand(registry.Candidates()...)
	return l
}

// OpenURL opens url with the platform opener. Returns an error only when an
// opener exists but fails to start; a missing opener is reported so the
// caller can surface it.
func (l *Launcher) OpenURL(url string) error {
	if url == "" {
		return fmt.Errorf("article has no source URL")
	}
	if l.opener == "" {
		return fmt.Errorf("no URL opener found on this system")
	}

	cmd, err := l.registry.Command(l.opener, url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", l.opener, err)
	}
	return nil
}

// Share hands the article's title, description and source URL to whatever
// capability is available: clipboard first, browser as fallback. When
// neither exists it is a silent no-op, never an error.
func (l *Launcher) Share(a newsapi.Article) {
	payload := SharePayload(a)

	if err := clipboard.WriteAll(payload); err == nil {
		return
	}

	if err := l.OpenURL(a.Source.URL); err != nil {
		debuglog.Debugf("share fell through: %v", err)
	}
}

// SharePayload formats an article for hand-off to another application.
func SharePayload(a newsapi.Article) string {
	return fmt.Sprintf("%s\n%s\n%s", a.Title, a.Description, a.Source.URL)
}

// findCommand returns the first command on PATH from the candidates.
func findCommand(candidates ...string) string {
	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return c
		}
	}
	return ""
}
