package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lexwire/lexwire/internal/config"
	"github.com/lexwire/lexwire/internal/debuglog"
	"github.com/lexwire/lexwire/internal/newsapi"
	"github.com/lexwire/lexwire/internal/tui"
	"github.com/lexwire/lexwire/internal/validation"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	flagConfig         string
	flagEndpoint       string
	flagGenerateConfig bool
	flagQuiet          bool
)

var rootCmd = &cobra.Command{
	Use:   "lexwire",
	Short: "Terminal legal-news reader",
	Long:  "lexwire pulls the latest legal-news feed into your terminal, with category tabs, search and a markdown reader.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to configuration file")
	rootCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "news endpoint URL (overrides config)")
	rootCmd.Flags().BoolVar(&flagGenerateConfig, "generate-config", false, "generate default config file")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "skip startup banner")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lexwire %s\n", Version)
	},
}

func run(cmd *cobra.Command, args []string) error {
	if flagGenerateConfig {
		home, _ := os.UserHomeDir()
		configFile := filepath.Join(home, ".config", "lexwire", "config.toml")

		if err := config.GenerateDefaultConfig(configFile); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
		return nil
	}

	if !flagQuiet {
		showBanner()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagEndpoint != "" {
		cfg.API.BaseURL = flagEndpoint
	}

	validator := validation.NewEndpointValidator()
	normalized, err := validator.ValidateAndNormalize(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", cfg.API.BaseURL, err)
	}
	cfg.API.BaseURL = normalized

	level := debuglog.ParseLogLevel(cfg.Log.Level)
	if err := debuglog.Setup(level, cfg.Log.Path); err != nil {
		log.Printf("debug log unavailable: %v", err)
	}
	defer debuglog.Close()

	client := newsapi.NewClient(cfg)
	app := tui.NewApp(client, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

func showBanner() {
	var coloredLines []string
	for i, line := range tui.LogoLines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}

		colorIdx := i % len(tui.BannerColors)
		style := lipgloss.NewStyle().
			Foreground(tui.BannerColors[colorIdx]).
			Bold(i < 4)
		coloredLines = append(coloredLines, style.Render(line))
	}

	for _, line := range coloredLines {
		fmt.Println(line)
	}
	fmt.Println()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
