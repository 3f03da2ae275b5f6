package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dbckit/dbc"
	"github.com/joshuapare/dbckit/internal/logger"
	"github.com/joshuapare/dbckit/internal/sqlexport"
)

func newExportCmd() *cobra.Command {
	var (
		flags    decodeFlags
		dbPath   string
		failFast bool
	)
	cmd := &cobra.Command{
		Use:   "export <file>...",
		Short: "Export decoded tables into a SQLite database",
		Long: `The export command decodes each table and writes it into a SQLite table
named after its schema (dashes become underscores). Tables that fail to
decode are reported and skipped unless --fail-fast is set.

Example:
  dbcctl export DanceMoves.dbc SpellRuneCost.dbc --db client.sqlite`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, &flags, dbPath, failFast, args)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&dbPath, "db", "dbc.sqlite", "SQLite database to write")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort on the first table that fails to decode")
	return cmd
}

func runExport(cmd *cobra.Command, flags *decodeFlags, dbPath string, failFast bool, paths []string) error {
	dec, err := flags.decoder()
	if err != nil {
		return err
	}

	db, err := sqlexport.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer db.Close()

	var failed []error
	for _, path := range paths {
		table, n, err := exportOne(cmd.Context(), dec, flags, db, path)
		if err == nil {
			logger.Info("exported table", "file", path, "table", table, "rows", n)
			printInfo("%s: %d rows -> %s\n", path, n, table)
			continue
		}
		if failFast {
			return err
		}
		logger.Warn("skipping table", "file", path, "err", err)
		printInfo("%s: skipped: %v\n", path, err)
		failed = append(failed, err)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d tables failed: %w", len(failed), len(paths), errors.Join(failed...))
	}
	return nil
}

func exportOne(ctx context.Context, dec *dbc.Decoder, flags *decodeFlags, db *sql.DB, path string) (string, int, error) {
	s, err := flags.schemaFor(path)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", path, err)
	}
	t, err := dec.ReadTable(path, s)
	if err != nil {
		return "", 0, err
	}
	table := sqlTableName(s.Name())
	n, err := sqlexport.Export(ctx, db, table, t)
	return table, n, err
}

func sqlTableName(schema string) string {
	return strings.ReplaceAll(schema, "-", "_")
}
