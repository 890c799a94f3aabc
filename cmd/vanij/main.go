package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register migrations and seeders.
	_ "github.com/shashiranjanraj/vanij/database/migrations"
	_ "github.com/shashiranjanraj/vanij/database/seeders"
)

func main() {
	root := &cobra.Command{
		Use:   "vanij",
		Short: "E-commerce admin API server and tooling",
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		migrateRollbackCmd(),
		migrateStatusCmd(),
		seedCmd(),
		routeListCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
