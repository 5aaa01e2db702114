package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

var errStale = errors.New("stylesheet is out of date")

type cssOptions struct {
	selector      string
	darkSelector  string
	lightSelector string
	noMediaQuery  bool
	output        string
	check         string
}

func newCSSCmd(root *rootFlags) *cobra.Command {
	opts := cssOptions{}

	cmd := &cobra.Command{
		Use:   "css <theme-file|preset:name>",
		Short: "Generate CSS custom properties for a theme",
		Long: `css resolves every token reference in the theme and prints one custom
property per token. When the theme carries an enabled dark overlay, dark
values are emitted under the dark selector and a prefers-color-scheme media
query.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(cmd, root, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.selector, "selector", "", "Selector for light variables (default from config, \":root\")")
	flags.StringVar(&opts.darkSelector, "dark-selector", "", "Selector for the explicit dark block")
	flags.StringVar(&opts.lightSelector, "light-selector", "", "Selector that forces light mode inside the media query")
	flags.BoolVar(&opts.noMediaQuery, "no-media-query", false, "Omit the prefers-color-scheme block")
	flags.StringVarP(&opts.output, "output", "o", "", "Write CSS to a file instead of stdout")
	flags.StringVar(&opts.check, "check", "", "Compare against an existing stylesheet and fail with a diff when it is stale")
	cmd.MarkFlagsMutuallyExclusive("output", "check")

	return cmd
}

func runCSS(cmd *cobra.Command, root *rootFlags, opts cssOptions, source string) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	doc, err := loadTheme(cmd.Context(), app, source)
	if err != nil {
		return err
	}

	cssOpts := app.Config.CSSOptions()
	flags := cmd.Flags()
	if flags.Changed("selector") {
		cssOpts.Selector = opts.selector
	}
	if flags.Changed("dark-selector") {
		cssOpts.DarkSelector = opts.darkSelector
	}
	if flags.Changed("light-selector") {
		cssOpts.LightSelector = opts.lightSelector
	}
	if flags.Changed("no-media-query") {
		cssOpts.OmitMediaQuery = opts.noMediaQuery
	}

	css, err := app.Themes.GenerateCSS(cmd.Context(), doc, cssOpts)
	if err != nil {
		return newCommandError("generate css", source, err, "Check the selectors and that token values contain no ';', '{' or '}'")
	}

	if opts.check != "" {
		return checkStylesheet(cmd, opts.check, css)
	}
	return writeOutput(cmd, opts.output, []byte(css))
}

func checkStylesheet(cmd *cobra.Command, path, css string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("check stylesheet", path, err, "Generate it first with 'themekit css <theme> -o "+path+"'")
	}

	out := cmd.OutOrStdout()
	patch := diff.Unified(string(existing), css, path, "generated")
	if patch == "" {
		fmt.Fprintf(out, "%s is up to date\n", path)
		return nil
	}

	fmt.Fprint(out, patch)
	added, removed := diff.Changed(string(existing), css)
	return newCommandError("check stylesheet", path, fmt.Errorf("%w: %d lines added, %d removed", errStale, added, removed), "Regenerate it with 'themekit css <theme> -o "+path+"'")
}
