// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/assetsrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/borrowersrp"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/db/postgres/categoriesrp"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/schemauc"
	"github.com/spf13/cobra"
)

const credsRenewalMessage = `
The admin role must be able to connect using the .pgpass file in the
pass-dir directory. Passwords of the admin and normal roles will be
renewed and written in the .pgpass.new file before being changed in
the database. After a successful commit, that file replaces .pgpass.`

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation in a development or production environment,
the init-dev or init-prod may be used.`,
}

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data.
The gpc schema is dropped (if it exists) and created again, then its
tables are created and filled with a few categories, borrowers, and
assets. The database connection information are read from the config
file.
` + credsRenewalMessage,
	RunE: initDB(func(ctx context.Context, uc *schemauc.UseCase) error {
		return uc.InitDev(ctx)
	}),
	Args: cobra.NoArgs,
}

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data.
The gpc schema is dropped (if it exists) and created again with its
empty tables. The database connection information are read from the
config file.
` + credsRenewalMessage,
	RunE: initDB(func(ctx context.Context, uc *schemauc.UseCase) error {
		return uc.InitProd(ctx)
	}),
	Args: cobra.NoArgs,
}

func initDB(
	run func(ctx context.Context, uc *schemauc.UseCase) error,
) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()
		c, err := loadConfig()
		if err != nil {
			return err
		}
		uc := schemauc.New(c.Database, schemauc.Repos{
			Categories: categoriesrp.New(),
			Borrowers:  borrowersrp.New(),
			Assets:     assetsrp.New(),
		})
		if err = run(ctx, uc); err != nil {
			return fmt.Errorf("initializing DB: %w", err)
		}
		return nil
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(initDevCmd)
	dbCmd.AddCommand(initProdCmd)
}
