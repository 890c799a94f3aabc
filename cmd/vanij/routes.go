package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/internal/server"
	"github.com/spf13/cobra"
)

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "List every registered route",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			r := server.NewRouter(cfg)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tNAME")
			for _, info := range r.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.Method, info.Path, info.Name)
			}
			return w.Flush()
		},
	}
}
