package main

import (
	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/database/seeders"
	"github.com/shashiranjanraj/vanij/pkg/database"
	"github.com/shashiranjanraj/vanij/pkg/logger"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			shutdown := logger.Setup(cfg)
			defer shutdown()

			if err := database.Connect(cfg); err != nil {
				return err
			}

			return seeders.RunAll(database.DB)
		},
	}
}
