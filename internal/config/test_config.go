package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://127.0.0.1:0/news",
			HTTPTimeout: 5 * time.Second,
			UserAgent:   "lexwire-test/1.0",
		},
		UI:     defaultConfig().UI,
		Search: defaultConfig().Search,
		Keys:   defaultConfig().Keys,
		Log:    LogConfig{Level: "off"},
	}
}
