package main

import (
	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/pkg/database"
	"github.com/shashiranjanraj/vanij/pkg/logger"
	"github.com/shashiranjanraj/vanij/pkg/migration"
	"github.com/spf13/cobra"
)

// withRunner loads config, connects the database and hands a migration
// runner to fn.
func withRunner(fn func(*migration.Runner) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdown := logger.Setup(cfg)
	defer shutdown()

	if err := database.Connect(cfg); err != nil {
		return err
	}

	return fn(migration.New(database.DB))
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(func(r *migration.Runner) error { return r.Run() })
		},
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(func(r *migration.Runner) error { return r.Rollback() })
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(func(r *migration.Runner) error { return r.Status() })
		},
	}
}
