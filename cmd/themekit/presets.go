package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/themekit/internal/app/theme"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range theme.PresetNames() {
				doc, err := theme.LookupPreset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s%s\t%s\t%s\n", apptheme.PresetPrefix, name, doc.Meta.Version, doc.Meta.Description)
			}
			return w.Flush()
		},
	}
}
