package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/wellness-atlas/pkg/observability"
	"github.com/de-tools/wellness-atlas/pkg/server"
	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/de-tools/wellness-atlas/pkg/services/history"
	"github.com/de-tools/wellness-atlas/pkg/services/report"
	"github.com/de-tools/wellness-atlas/pkg/store/duckdb"
	historystore "github.com/de-tools/wellness-atlas/pkg/store/duckdb/history"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the wellness report generator",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file (defaults and WELLNESS_* variables when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	logger, closer := observability.NewLogger(cfg.Log, os.Stdout)
	defer closer.Close()

	theme, err := config.ResolveTheme(cfg.ThemesFile, cfg.Theme)
	if err != nil {
		return fmt.Errorf("failed to resolve theme: %w", err)
	}
	generator, err := report.NewGenerator(report.Options{Product: cfg.Product, Theme: &theme})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	var runs history.Service
	if cfg.History.DbPath != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.History.DbPath})
		if err != nil {
			return fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		defer db.Close()

		st, err := historystore.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create history store: %w", err)
		}
		runs = history.NewService(st)
		logger.Info().Msgf("Run history stored at `%s`.", cfg.History.DbPath)
	} else {
		logger.Warn().Msg("history.db_path is empty, run history is disabled")
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		return fmt.Errorf("SERVER_HOST and SERVER_PORT must be set")
	}

	logger.Info().Msgf("Rendering `%s` reports with the `%s` theme.", generator.Product(), cfg.Theme)

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Generator: generator,
			History:   runs,
			Logger:    logger,
		},
	})

	return api.Start()
}
