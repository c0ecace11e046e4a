// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin/routes"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/sheet/xlsxsheet"
	"github.com/orbitechz/GPC-Backend/pkg/core/repo"
	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Assets management actions",
}

var importCmd = &cobra.Command{
	Use:   "import FILE.xlsx",
	Short: "Import assets from an XLSX spreadsheet",
	Long: `Import assets from the first sheet of an XLSX spreadsheet.
The first row must name the tag, name, category_id, condition, status,
and entry_date columns (name is optional). Each row is validated and
created independently and a json summary is printed, reporting the
number of created assets and the failing rows with their reasons.`,
	RunE: importAssets,
	Args: cobra.ExactArgs(1),
}

func importAssets(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	rows, err := xlsxsheet.Open(args[0])
	if err != nil {
		return fmt.Errorf("reading sheet: %w", err)
	}
	p, err := c.Database.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	ucs, err := c.Usecases.NewUseCases(p, routes.PostgresRepos())
	if err != nil {
		return err
	}
	s, err := ucs.Assets.Import(ctx, rows)
	if err != nil {
		return fmt.Errorf("importing assets: %w", err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(b))
	return nil
}

func init() {
	rootCmd.AddCommand(assetsCmd)
	assetsCmd.AddCommand(importCmd)
}
