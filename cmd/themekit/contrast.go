package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/render"
)

func newContrastCmd(root *rootFlags) *cobra.Command {
	var themeSource string

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Print the WCAG contrast ratio of two hex colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := contrast.Ratio(args[0], args[1])
			if err != nil {
				return newCommandError("compute contrast", args[0]+" on "+args[1], err, "Use 6-digit hex colours such as #1f2937")
			}

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			doc, err := loadTheme(cmd.Context(), app, themeSource)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r, err := render.New(out, doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%.2f:1 %s\n", ratio, r.Badge(contrast.Grade(ratio)))
			return nil
		},
	}

	cmd.Flags().StringVar(&themeSource, "theme", "preset:default", "Theme whose status colours style the grade")

	return cmd
}
