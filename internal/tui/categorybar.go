package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// categoryBar renders the derived category tabs. Exactly one category is
// active at a time; "All" resets to the unscoped feed.
type categoryBar struct {
	categories []string
	active     string
	filterMode bool
	cursor     int
}

func newCategoryBar() categoryBar {
	return categoryBar{active: CategoryAll}
}

// setCategories replaces the derived category list. The active category is
// kept even if it no longer appears, since it still drives the scoped fetch.
func (c *categoryBar) setCategories(categories []string) {
	c.categories = categories
	if c.cursor > len(categories) {
		c.cursor = 0
	}
}

// entries returns "All" plus the derived categories, the order shown.
func (c *categoryBar) entries() []string {
	return append([]string{"All"}, c.categories...)
}

func (c *categoryBar) moveCursor(delta int) {
	n := len(c.entries())
	c.cursor = (c.cursor + delta + n) % n
}

// selected maps the cursor to a category value ("all" for the first entry).
func (c *categoryBar) selected() string {
	if c.cursor == 0 {
		return CategoryAll
	}
	return c.categories[c.cursor-1]
}

func (c *categoryBar) render(width int) string {
	sep := SeparatorStyle.Render(" · ")

	var parts []string
	for i, entry := range c.entries() {
		value := CategoryAll
		if i > 0 {
			value = entry
		}

		style := CategoryInactiveStyle
		if value == c.active {
			style = CategoryActiveStyle
		}

		label := entry
		if c.filterMode && i == c.cursor {
			label = "[" + entry + "]"
			if value != c.active {
				style = CategoryCursorStyle
			}
		}
		parts = append(parts, style.Render(label))
	}

	// Build the row, stopping when it would exceed the width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			row += SeparatorStyle.Render(" …")
			break
		}
		row = candidate
	}

	return row
}

// displayName renders a category value for headers.
func displayName(category string) string {
	if category == CategoryAll {
		return "All"
	}
	return category
}
