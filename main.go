// unit-pulse is a terminal single-page application with three views:
// a home page, a length unit converter, and a GitHub profile lookup
// gated by a personal access token.
//
// Usage:
//
//	unit-pulse [flags]
//
// Flags:
//
//	-config string   Path to configuration file (default: ~/.config/unit-pulse/config.toml)
//	-route string    Startup location path ("", "unit-converter", "github-info")
//	-endpoint string Override the GitHub profile endpoint URL
//	-use-mocks       Use a mock profile fetcher instead of the GitHub API
//	-verbose         Enable verbose logging
//	-version         Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/unit-pulse/pkg/config"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/github"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		route       = flag.String("route", "", "Startup location path")
		endpoint    = flag.String("endpoint", "", "Override the GitHub profile endpoint URL")
		useMocks    = flag.Bool("use-mocks", false, "Use a mock profile fetcher instead of the GitHub API")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("unit-pulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *endpoint != "" {
		cfg.GitHub.Endpoint = *endpoint
	}

	// The empty route is a valid destination (home), so only an
	// explicitly passed -route overrides the config value.
	startupRoute := cfg.General.StartupRoute
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "route" {
			startupRoute = *route
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file; stderr belongs to the TUI while it runs.
	if err := ensureLogDir(cfg.General.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: logLevel(cfg.General.LogLevel, *verbose),
	}))

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "unit-pulse needs an interactive terminal")
		os.Exit(1)
	}

	theme := tui.NewTheme(cfg.Theme.Name, termenv.HasDarkBackground())

	var fetcher github.Fetcher
	if *useMocks {
		logger.Info("using mock profile fetcher")
		fetcher = github.NewMockFetcher()
	} else {
		fetcher = github.NewClient(cfg.GitHub.Endpoint, nil, logger)
	}

	logger.Info("starting unit-pulse",
		"version", version,
		"route", startupRoute,
		"theme", cfg.Theme.Name,
	)

	model := tui.New(fetcher, startupRoute, theme)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}
}

// logLevel maps the configured level to slog, with -verbose forcing
// debug.
func logLevel(level string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureLogDir(logFile string) error {
	dir := filepath.Dir(logFile)
	return os.MkdirAll(dir, 0755)
}
