package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dbckit/dbc"
	"github.com/joshuapare/dbckit/internal/logger"
)

func newDumpCmd() *cobra.Command {
	var (
		flags  decodeFlags
		limit  int
		id     uint32
		locale int
	)
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode a table and print its records",
		Long: `The dump command decodes every record of a DBC table with its schema and
prints them, one line per record, or as a JSON array with --json.

Example:
  dbcctl dump DanceMoves.dbc
  dbcctl dump DanceMoves.dbc --id 3 --locale 2
  dbcctl dump data.bin --schema spell-rune-cost --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(&flags, args[0], dumpOptions{
				limit:  limit,
				id:     id,
				byID:   cmd.Flags().Changed("id"),
				locale: locale,
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most this many records (0 = all)")
	cmd.Flags().Uint32Var(&id, "id", 0, "Print only the record with this id")
	cmd.Flags().IntVar(&locale, "locale", 0, "Locale index shown for localized strings in text output")
	return cmd
}

type dumpOptions struct {
	limit  int
	id     uint32
	byID   bool
	locale int
}

func runDump(flags *decodeFlags, path string, opts dumpOptions) error {
	dec, err := flags.decoder()
	if err != nil {
		return err
	}
	s, err := flags.schemaFor(path)
	if err != nil {
		return err
	}

	printVerbose("Decoding %s with schema %s\n", path, s.Name())
	t, err := dec.ReadTable(path, s)
	if err != nil {
		return err
	}
	logger.Debug("decoded table", "file", path, "schema", s.Name(), "records", t.Len())

	records := t.Records
	if opts.byID {
		r, ok := t.ByID(opts.id)
		if !ok {
			return fmt.Errorf("no record with id %d in %s", opts.id, path)
		}
		records = []dbc.Record{r}
	}
	if opts.limit > 0 && len(records) > opts.limit {
		records = records[:opts.limit]
	}

	if jsonOut {
		return printJSON(records)
	}
	for _, r := range records {
		printInfo("%s\n", formatRecord(r, opts.locale))
	}
	return nil
}

// formatRecord renders r as "name=value" pairs in field order.
func formatRecord(r dbc.Record, locale int) string {
	parts := make([]string, r.Len())
	for i := range parts {
		f, v := r.At(i)
		switch v.Kind() {
		case dbc.KindLocalizedString:
			loc := v.Localized()
			parts[i] = fmt.Sprintf("%s=%q", f.Name, loc.Get(locale))
		default:
			parts[i] = f.Name + "=" + v.String()
		}
	}
	return strings.Join(parts, " ")
}
