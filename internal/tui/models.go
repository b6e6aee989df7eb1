package tui

// View identifies the top-level screen being shown.
type View int

const (
	ViewFeed View = iota
	ViewReader
)

// CategoryAll is the sentinel for the unscoped feed.
const CategoryAll = "all"
