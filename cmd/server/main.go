package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suprimaaldino/pempek-domino/internal/app"
	"github.com/suprimaaldino/pempek-domino/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pempek-domino",
		Short: "Order-taking backend for Pempek Domino",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return app.New(cfg).Run()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed an empty store with the default catalog and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return app.New(cfg).Seed()
		},
	}
}
