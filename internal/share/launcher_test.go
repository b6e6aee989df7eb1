package share

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexwire/lexwire/internal/newsapi"
)

func TestSharePayload(t *testing.T) {
	a := newsapi.Article{
		Title:       "Appeals Court Revives Antitrust Claim",
		Description: "The panel reinstated the tying claim.",
		Source:      newsapi.Source{Name: "Court Wire", URL: "https://example.org/a-1"},
	}

	payload := SharePayload(a)

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, a.Title, lines[0])
	assert.Equal(t, a.Description, lines[1])
	assert.Equal(t, a.Source.URL, lines[2])
}

func TestOpenURLWithoutOpener(t *testing.T) {
	l := &Launcher{registry: &OpenerRegistry{openers: map[string]OpenerDefinition{}}}

	err := l.OpenURL("https://example.org")
	assert.Error(t, err, "missing opener should be reported to the caller")
}

func TestOpenURLEmptyURL(t *testing.T) {
	l := NewLauncher()
	assert.Error(t, l.OpenURL(""))
}

func TestShareNeverErrors(t *testing.T) {
	// No opener, likely no clipboard in CI either; Share must still be a
	// silent no-op
	l := &Launcher{registry: &OpenerRegistry{openers: map[string]OpenerDefinition{}}}

	assert.NotPanics(t, func() {
		l.Share(newsapi.Article{Title: "t", Description: "d"})
	})
}

func TestFindCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH lookup differs on windows")
	}

	assert.Equal(t, "sh", findCommand("definitely-not-a-real-binary", "sh"))
	assert.Equal(t, "", findCommand("definitely-not-a-real-binary"))
}
