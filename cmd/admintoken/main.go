package main

import (
	"context"
	"fmt"
	"os"
	"stickynotes/cmd/internal/config"
	"stickynotes/cmd/internal/utils"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := command().Execute(); err != nil {
		os.Exit(1)
	}
}

// command issues a superuser token signed with ADMIN_TOKEN_SECRET.
func command() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "admintoken",
		Short: "Print a superuser bearer token for the admin API",
		Long: `Print a superuser bearer token for the admin API.

The token is signed with ADMIN_TOKEN_SECRET, read the same way the API
server reads it (.env locally, SSM when GO_ENV=production).

Example:
  admintoken --subject=ops --ttl=30m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(context.Background())
			if err != nil {
				return err
			}
			if !cfg.AdminEnabled() {
				return fmt.Errorf("ADMIN_TOKEN_SECRET is not set")
			}

			token, err := utils.IssueAdminToken([]byte(cfg.AdminTokenSecret), subject, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "subject claim of the token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "how long the token stays valid")
	return cmd
}
