package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/edulearn/internal/config"
	"github.com/javiermolinar/edulearn/internal/courseapi"
	"github.com/javiermolinar/edulearn/internal/db"
	"github.com/javiermolinar/edulearn/internal/httpclient"
	"github.com/javiermolinar/edulearn/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	store      *db.SQLite
	debug      bool   // Enable debug logging
	endpoint   string // Overrides the configured catalog endpoint
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg, configPath: config.DefaultConfigPath()}

	a.root = &cobra.Command{
		Use:   "edulearn",
		Short: "Browse the EduLearn course catalog",
		Long: `EduLearn is a terminal catalog of courses.

Running it without a subcommand opens the catalog view, which fetches
the course list once from the configured endpoint and shows it as a grid
of cards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.applyOverrides(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to the configured log file)")
	a.root.PersistentFlags().StringVar(&a.endpoint, "endpoint", "", "Course-listing endpoint URL (overrides config)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.serveCmd())
	a.root.AddCommand(a.seedCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "edulearn %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the course store if a command opened it.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// applyOverrides applies command-line overrides to the loaded config.
func (a *App) applyOverrides() error {
	if a.endpoint == "" {
		return nil
	}
	if err := config.ValidateEndpoint(a.endpoint); err != nil {
		return err
	}
	a.config.Catalog.Endpoint = a.endpoint
	return nil
}

// catalogClient builds the HTTP client for the configured endpoint.
func (a *App) catalogClient() *courseapi.Client {
	httpCfg := httpclient.DefaultConfig().WithTimeout(a.config.FetchTimeout())
	return courseapi.New(a.config.Catalog.Endpoint, courseapi.WithHTTPClient(httpclient.New(httpCfg)))
}

// ensureStore opens the course store, creating its directory if needed.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	store, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening course store: %w", err)
	}
	a.store = store
	return nil
}
