package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/dbckit/dbc"
	"github.com/joshuapare/dbckit/schemas"
)

// charsets are the legacy code pages older clients stored strings in.
var charsets = map[string]encoding.Encoding{
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"koi8-r":       charmap.KOI8R,
}

// decodeFlags are shared by every command that decodes rows.
type decodeFlags struct {
	schema     string
	signature  bool
	charset    string
	strict     bool
	maxRecords uint32
}

func (f *decodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "Schema name (default: derived from the file name)")
	cmd.Flags().BoolVar(&f.signature, "signature", false, "Expect the WDBC magic before the header")
	cmd.Flags().StringVar(&f.charset, "charset", "", "String block code page (windows-1252, windows-1251, ...); default UTF-8")
	cmd.Flags().BoolVar(&f.strict, "strict-strings", false, "Fail on strings missing a NUL terminator")
	cmd.Flags().Uint32Var(&f.maxRecords, "max-records", 0, "Reject tables declaring more records (0 = no limit)")
}

func (f *decodeFlags) decoder() (*dbc.Decoder, error) {
	opts := dbc.Options{
		Signature:     f.signature,
		StrictStrings: f.strict,
		MaxRecords:    f.maxRecords,
	}
	if name := strings.ToLower(f.charset); name != "" && name != "utf-8" && name != "utf8" {
		enc, ok := charsets[name]
		if !ok {
			return nil, fmt.Errorf("unknown charset %q", f.charset)
		}
		opts.Charset = enc
	}
	return dbc.NewDecoder(opts), nil
}

// schemaFor resolves --schema, falling back to the file name.
func (f *decodeFlags) schemaFor(path string) (*dbc.Schema, error) {
	if f.schema != "" {
		return schemas.Default().Lookup(f.schema)
	}
	return schemas.Default().ForFile(path)
}
