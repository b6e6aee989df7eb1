package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const AppName = "lexwire"

// ASCII art logo lines for lexwire - canonical definition
var LogoLines = []string{
	"▄█   ▄███▄ ▀▄   ▄▀ ▄ ▄   ▄ ▄ ▄▄▄▄  ▄███▄",
	"██   ██▄▄▄   ▀▄▀   ██ ██ ██ █ ██▄█▀ ██▄▄▄",
	"██   ██     ▄▀ ▀▄  ██ ██ ██ █ ██ ▀▄ ██",
	"█████ ▀███▀ ▀   ▀   ▀▀   ▀▀  ▀ ▀   ▀ ▀███▀",
	"",
	"    legal news, wired to your terminal",
}

const CompactLogo = "lexwire ›"

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#C9A227"),
	lipgloss.Color("#E0C063"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#C9A227"),
}

// Brand colors: gavel gold against courthouse slate
var (
	PrimaryColor   = lipgloss.Color("#C9A227") // Gavel gold
	SecondaryColor = lipgloss.Color("#4ECDC4") // Teal
	AccentColor    = lipgloss.Color("#95E1D3") // Mint

	TextColor  = lipgloss.Color("#EAEAEA") // Soft white
	MutedColor = lipgloss.Color("#94A3B8") // Muted gray-blue

	BookmarkColor = lipgloss.Color("#FFE66D") // Bright yellow
	ErrorColor    = lipgloss.Color("#EF4444") // Red
	SuccessColor  = lipgloss.Color("#10B981") // Green
)

// Styled components
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Padding(0, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	BookmarkedItemStyle = lipgloss.NewStyle().
				Foreground(BookmarkColor).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	TimeStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Faint(true)

	TagStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	CategoryActiveStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Underline(true)

	CategoryInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	CategoryCursorStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)
