package main

import (
	"context"

	"github.com/spf13/cobra"

	"gtmdiff/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize gtmdiff and cache the OAuth token",
	Long: `Run the OAuth authorization flow for the configured client secret and
cache the resulting token. Subsequent commands reuse the cached token
and refresh it silently; run login again only if access was revoked.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	authenticator, err := auth.New(cfg.Auth.CredentialsPath, cfg.Auth.TokenDBPath, logger)
	if err != nil {
		return err
	}
	defer authenticator.Close()

	return authenticator.Login(context.Background())
}
