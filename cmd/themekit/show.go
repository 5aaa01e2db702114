package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/render"
)

type showOptions struct {
	dark  bool
	light bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := showOptions{}

	cmd := &cobra.Command{
		Use:   "show <theme-file|preset:name>",
		Short: "Draw sample components in the theme's colours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Use the dark colours regardless of the terminal background")
	cmd.Flags().BoolVar(&opts.light, "light", false, "Use the light colours regardless of the terminal background")
	cmd.MarkFlagsMutuallyExclusive("dark", "light")

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, opts showOptions, source string) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	doc, err := loadTheme(cmd.Context(), app, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r, err := render.New(out, doc)
	if err != nil {
		return newCommandError("render theme", source, err, "Run 'themekit validate "+source+"' to check the theme's colours")
	}
	switch {
	case opts.dark:
		r.SetDark(true)
	case opts.light:
		r.SetDark(false)
	}

	view, err := r.Showcase()
	if err != nil {
		return newCommandError("render theme", source, err, "Check that every button colour is a hex value or a colour reference")
	}
	fmt.Fprintln(out, view)
	return nil
}
