package tui

const ellipsis = "…"

// truncateEnd caps s at limit runes, ending with an ellipsis when anything
// was cut. Used for article descriptions in list rows.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return ellipsis
	}
	return string(runes[:limit-1]) + ellipsis
}

// truncateMiddle caps s at limit runes, collapsing the middle into an
// ellipsis. Source URLs keep their host and trailing slug this way.
func truncateMiddle(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return ellipsis
	}

	keep := limit - 1
	head := keep / 2
	tail := keep - head

	switch {
	case head == 0:
		return ellipsis + string(runes[len(runes)-tail:])
	case tail == 0:
		return string(runes[:head]) + ellipsis
	default:
		return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
	}
}
