package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/dbckit/schemas"
)

type schemaField struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Width int    `json:"width"`
}

type schemaInfo struct {
	Name       string        `json:"name"`
	RecordSize int           `json:"record_size"`
	Locales    int           `json:"locales"`
	Fields     []schemaField `json:"fields"`
}

func newSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas [name]",
		Short: "List the built-in table schemas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchemas(args)
		},
	}
}

func runSchemas(args []string) error {
	reg := schemas.Default()
	names := reg.Names()
	if len(args) == 1 {
		names = args
	}

	out := make([]schemaInfo, 0, len(names))
	for _, name := range names {
		s, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		info := schemaInfo{Name: s.Name(), RecordSize: s.RecordSize(), Locales: s.Locales()}
		for _, f := range s.Fields() {
			info.Fields = append(info.Fields, schemaField{
				Name:  f.Name,
				Kind:  f.Kind.String(),
				Width: s.FieldWidth(f),
			})
		}
		out = append(out, info)
	}

	if jsonOut {
		return printJSON(out)
	}
	for _, info := range out {
		printInfo("%s (%d bytes)\n", info.Name, info.RecordSize)
		for _, f := range info.Fields {
			printInfo("  %-16s %-10s %3d\n", f.Name, f.Kind, f.Width)
		}
	}
	return nil
}
