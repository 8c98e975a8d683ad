// Package cmd contains all CLI commands for forumctl
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/auth"
	"github.com/Sowjanyakambhampati/forumctl/internal/config"
	"github.com/Sowjanyakambhampati/forumctl/internal/gateway/kratos"
	"github.com/Sowjanyakambhampati/forumctl/internal/output"
	"github.com/Sowjanyakambhampati/forumctl/internal/session"
	"github.com/Sowjanyakambhampati/forumctl/internal/view"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	jsonOut   bool
	colorFlag string

	cfg     *config.Config
	logger  *slog.Logger
	store   *session.Store
	views   *view.View
	printer *output.Printer
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forumctl",
	Short: "Community forum platform CLI",
	Long: `forumctl is a command-line client for the community forum platform.

It covers the whole platform: events, community posts, neighborhoods, the
marketplace, notifications and search. Sign in once and the session is
shared by every terminal.

Example usage:
  forumctl login               # Sign in (backend first, identity provider as fallback)
  forumctl home                # Dashboard: events, posts, listings at a glance
  forumctl events list         # Browse upcoming events
  forumctl market list --search bike
  forumctl whoami              # Show the signed-in user`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			_ = store.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .forumctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.colors", rootCmd.PersistentFlags().Lookup("color"))
}

// initApp loads configuration and wires the client stack: session store,
// REST client, auth providers, view layer and printer.
func initApp(cmd *cobra.Command) error {
	var err error

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Logging.Level == "debug" || verbose {
		logLevel = slog.LevelDebug
	}
	if cfg.Logging.Format == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}

	sessionFile, err := cfg.SessionFile()
	if err != nil {
		return fmt.Errorf("resolving session file: %w", err)
	}
	store = session.NewStore(sessionFile, logger)
	if cfg.Session.Watch {
		if err := store.Watch(); err != nil {
			logger.Warn("session file watching disabled", "error", err)
		}
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store, logger)

	providers := []auth.Provider{auth.NewBackendProvider(client, logger)}
	idp, err := kratos.NewProvider(cfg.Identity.PublicURL, cfg.Identity.Timeout, logger)
	if err != nil {
		logger.Warn("identity provider unavailable, running backend-only", "error", err)
	} else {
		providers = append(providers, idp)
	}

	manager := auth.NewManager(store, logger, providers...)
	views = view.New(client, manager, logger)

	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return err
	}
	printer = output.NewPrinterTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg.Output.Colors,
		Quiet:        quiet,
		JSON:         jsonOut,
	})

	logger.Debug("configuration loaded",
		"api_base_url", cfg.API.BaseURL,
		"identity_public_url", cfg.Identity.PublicURL,
		"session_file", sessionFile,
	)

	return nil
}
