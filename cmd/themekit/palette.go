package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/render"
)

type paletteOptions struct {
	steps int
	theme string
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	opts := paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette <hex>",
		Short: "Generate a lightest-to-darkest palette from one colour",
		Long: `palette keeps the hue and saturation of the base colour and spreads the
lightness across the requested number of steps. On a terminal the shades are
drawn as swatches; otherwise one "step hex" pair is printed per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.steps, "steps", "n", color.DefaultPaletteSteps, "Number of shades")
	cmd.Flags().StringVar(&opts.theme, "theme", "preset:default", "Theme used for terminal styling")

	return cmd
}

func runPalette(cmd *cobra.Command, root *rootFlags, opts paletteOptions, base string) error {
	shades, err := color.GeneratePalette(base, opts.steps)
	if err != nil {
		return newCommandError("generate palette", base, err, "Use a 6-digit hex colour and at least one step")
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		for _, shade := range shades {
			fmt.Fprintf(out, "%d %s\n", shade.Step, shade.Hex)
		}
		return nil
	}

	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}
	doc, err := loadTheme(cmd.Context(), app, opts.theme)
	if err != nil {
		return err
	}
	r, err := render.New(out, doc)
	if err != nil {
		return err
	}
	view, err := r.Swatches(shades)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, view)
	return nil
}
