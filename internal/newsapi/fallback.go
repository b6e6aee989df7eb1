package newsapi

import "time"

// FallbackFeed returns the demo dataset substituted whenever a live fetch
// fails. Timestamps are generated relative to now so the relative-time
// display stays sensible regardless of when the failure happens.
func FallbackFeed(now time.Time) []Article {
	return []Article{
		{
			ID:          "1",
			Title:       "Supreme Court Clarifies Standard for Corporate Successor Liability",
			Description: "In a unanimous opinion, the Court held that acquiring companies inherit environmental remediation duties when the purchase agreement is silent, resolving a long-standing circuit split.",
			Tags:        []string{"Corporate", "Environmental"},
			PublishedAt: now.Add(-2 * time.Hour),
			Source:      Source{Name: "Lexwire Demo Desk", URL: "https://example.com/articles/successor-liability"},
		},
		{
			ID:          "2",
			Title:       "Treasury Finalizes Rules on Cross-Border Merger Taxation",
			Description: "The final regulations tighten the anti-inversion thresholds and restate the substantial-business-activities test, with immediate effect for deals signed after publication.",
			Tags:        []string{"Corporate", "Tax Law"},
			PublishedAt: now.Add(-4 * time.Hour),
			Source:      Source{Name: "Lexwire Demo Desk", URL: "https://example.com/articles/merger-taxation"},
		},
		{
			ID:          "3",
			Title:       "WTO Panel Rules Against Retaliatory Steel Tariffs",
			Description: "The panel found the safeguard measures inconsistent with GATT Article XIX, giving the respondent ninety days to bring the tariffs into conformity or face authorized countermeasures.",
			Tags:        []string{"International", "Trade"},
			PublishedAt: now.Add(-6 * time.Hour),
			Source:      Source{Name: "Lexwire Demo Desk", URL: "https://example.com/articles/steel-tariffs"},
		},
		{
			ID:          "4",
			Title:       "Senate Passes Sentencing Reform Bill After Marathon Session",
			Description: "The bill narrows mandatory minimums for nonviolent offenses and expands compassionate release, sending the measure to conference with the House version passed in spring.",
			Tags:        []string{"Criminal", "Legislation"},
			PublishedAt: now.Add(-8 * time.Hour),
			Source:      Source{Name: "Lexwire Demo Desk", URL: "https://example.com/articles/sentencing-reform"},
		},
	}
}
