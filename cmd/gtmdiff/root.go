package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gtmdiff/internal/auth"
	"gtmdiff/internal/config"
	"gtmdiff/internal/gtm"
	"gtmdiff/internal/logging"
	"gtmdiff/internal/snapshot"
	"gtmdiff/internal/version"
)

var (
	// configPath is the CLI --config flag value
	configPath string
	// logFormat/logLevel override the configured logging settings
	logFormat string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "gtmdiff",
	Short: "Field-level comparison of Google Tag Manager containers",
	Long: `gtmdiff compares the tags, triggers and variables of two Tag Manager
containers field by field and reports every difference as one CSV row,
addressed by a dotted/indexed field path such as parameter[0].value.

Environment-coupled metadata (fingerprints, account and workspace IDs,
URLs) is stripped before comparison, so only meaningful configuration
differences appear in the report.`,
	Version: version.Info(),
}

func init() {
	// A .env in the working directory can supply GTMDIFF_* variables
	_ = godotenv.Load()

	rootCmd.SetVersionTemplate("gtmdiff version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: $HOME/.gtmdiff/config.json)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: human or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn or error")
}

// loadConfig loads and validates the configuration, with flag overrides applied
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the logger from the effective configuration
func newLogger(cfg *config.Config) *logging.Logger {
	format := logging.HumanFormat
	if cfg.Logging.Format == string(logging.JSONFormat) {
		format = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: format,
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}

// assemblerOptions maps the diff configuration onto snapshot assembly options
func assemblerOptions(cfg *config.Config) snapshot.Options {
	opts := snapshot.Options{
		NoiseKeys:        cfg.Diff.NoiseKeys,
		IdentifierFields: make(map[snapshot.Category][]string, len(cfg.Diff.IdentifierFields)),
	}
	for _, c := range cfg.Diff.Categories {
		opts.Categories = append(opts.Categories, snapshot.Category(c))
	}
	for category, fields := range cfg.Diff.IdentifierFields {
		opts.IdentifierFields[snapshot.Category(category)] = fields
	}
	return opts
}

// newGTMClient authenticates and returns an API client plus a closer for
// the token cache
func newGTMClient(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*gtm.Client, func() error, error) {
	authenticator, err := auth.New(cfg.Auth.CredentialsPath, cfg.Auth.TokenDBPath, logger)
	if err != nil {
		return nil, nil, err
	}

	httpClient, err := authenticator.Client(ctx)
	if err != nil {
		authenticator.Close()
		return nil, nil, err
	}

	client, err := gtm.NewClient(ctx, httpClient, logger)
	if err != nil {
		authenticator.Close()
		return nil, nil, err
	}
	return client, authenticator.Close, nil
}

// fetchSnapshot resolves one container and assembles its snapshot
func fetchSnapshot(ctx context.Context, client *gtm.Client, assembler *snapshot.Assembler, account, container string) (snapshot.Snapshot, error) {
	source, err := client.OpenContainer(ctx, account, container)
	if err != nil {
		return nil, err
	}
	return assembler.Assemble(ctx, source)
}
