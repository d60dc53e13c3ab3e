package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/niggl1/appsindico/internal/interfaces/cli/migrate"
	"github.com/niggl1/appsindico/internal/interfaces/cli/server"
	"github.com/niggl1/appsindico/internal/interfaces/cli/token"
	"github.com/niggl1/appsindico/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "appsindico",
		Short:   "AppSindico - condominium ticket management",
		Long:    `AppSindico tracks inspections, maintenance, incidents and cleaning for condominiums, with share links and public comments for residents and contractors.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
