package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/potluckhq/potluck/internal/interfaces/cli/migrate"
	"github.com/potluckhq/potluck/internal/interfaces/cli/server"
	"github.com/potluckhq/potluck/internal/shared/version"
)

// @title Potluck API
// @version 1.0
// @description Organize potlucks: admins build categories and items, attendees claim them through a share link.
// @BasePath /
// @securityDefinitions.apikey AdminSession
// @in header
// @name Authorization
// @description Admin session token, also accepted from the potluck_admin cookie
func main() {
	rootCmd := &cobra.Command{
		Use:   "potluck",
		Short: "Potluck - shared dish sign-up sheets",
		Long:  `Potluck runs the organizer API and the public share-link pages, and manages the database schema.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		newVersionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
