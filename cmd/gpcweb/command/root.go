// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the gpcweb
// asset lending server. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database initialization actions and
// the "assets" sub-command can import assets from a spreadsheet.
//
//	./gpcweb [-c /path/of/config.yaml] [--memory] [--addr :8080]
//	./gpcweb db init-dev [-c /path/of/config.yaml]
//	./gpcweb db init-prod [-c /path/of/config.yaml]
//	./gpcweb assets import /path/of/assets.xlsx [-c /path/of/config.yaml]
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/config"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/memory"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/routes"
	"github.com/orbitechz/GPC-Backend/pkg/core/log"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	inMemory bool
	addr     string
)

var rootCmd = &cobra.Command{
	Use:   "gpcweb",
	Short: "Asset lending management web server",
	Long: `Asset lending management web server which keeps the
registry of assets (e.g., wheelchairs) and their borrowers and records
the loans (movements) of assets to borrowers, marking the loaned assets
as in use. Assets, borrowers, categories, and movements are managed by
REST APIs under the /api/gpc/v1 path.
Data is stored in a PostgreSQL database, which may be initialized by
the db sub-commands, or in memory if the --memory flag is given.`,
	RunE: startWebServer,
	Args: cobra.NoArgs,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	log.Info(ctx, "configuration is loaded", log.Valuer("config", c))
	p, rs := repo.Pool(nil), routes.PostgresRepos()
	if inMemory {
		p, rs = memory.NewPool(), routes.MemoryRepos()
	} else {
		pp, err := c.Database.ConnectionPool(ctx, repo.NormalRole)
		if err != nil {
			return fmt.Errorf("creating DB pool: %w", err)
		}
		defer pp.Close()
		p = pp
	}
	e, m := c.Gin.NewEngine()
	if err = routes.Register(e, p, rs, c.Usecases, m); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	log.Info(ctx, "starting web server",
		slog.String("addr", addr), slog.Bool("memory", inMemory),
	)
	if err = e.Run(addr); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// loadConfig loads the cfgPath config file and replaces the default
// slog logger based on its logging settings.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(c.Logging.NewLogger(os.Stderr))
	return c, nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.Flags().BoolVar(
		&inMemory, "memory", false, "keep data in memory (no database)",
	)
	rootCmd.Flags().StringVar(
		&addr, "addr", ":8080", "listening address of the web server",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
