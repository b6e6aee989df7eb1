package tui

import (
	"fmt"
	"time"
)

// relativeTime renders how long ago an article was published. Whole-hour
// buckets: under an hour reads as "Just now", and the day count is the
// floor of elapsed hours over 24.
func relativeTime(published, now time.Time) string {
	hours := int(now.Sub(published).Hours())

	switch {
	case hours < 1:
		return "Just now"
	case hours == 1:
		return "1 hour ago"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
