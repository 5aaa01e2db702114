package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/render"
)

type previewOptions struct {
	darkFlags
	json bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <theme-file|preset:name>",
		Short: "Compare contrast before and after dark-mode synthesis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, &opts, args[0])
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the preview in JSON format")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts *previewOptions, source string) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	doc, err := loadTheme(cmd.Context(), app, source)
	if err != nil {
		return err
	}

	dmOpts, err := opts.options(cmd, app, doc)
	if err != nil {
		return newCommandError("configure dark mode", source, err, "Check --intensity and that contrast floors lie between 1 and 21")
	}

	preview, err := app.Themes.Preview(cmd.Context(), doc, dmOpts)
	if err != nil {
		return newCommandError("preview dark mode", source, err, "Run 'themekit validate "+source+"' to check the theme's colours")
	}

	out := cmd.OutOrStdout()
	if opts.json {
		data, err := json.MarshalIndent(preview, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	r, err := render.New(out, doc)
	if err != nil {
		return err
	}
	r.SetUnicode(isTerminal(out))

	fmt.Fprintln(out, r.ContrastTable(preview.ContrastReport))
	for _, a := range preview.Adjustments {
		if a.Met {
			continue
		}
		fmt.Fprintln(out, r.Alert(render.AlertWarning, fmt.Sprintf("%s stays at %.2f:1 (%s), wanted %.1f:1", a.Pair, a.After, contrast.Grade(a.After), a.Required)))
	}
	return nil
}
