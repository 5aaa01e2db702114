package main

import (
	"fmt"

	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/themekit/internal/app/theme"
	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// darkFlags are the synthesis overrides shared by dark and preview.
type darkFlags struct {
	intensity     string
	preserveBrand bool
	saturation    float64
	noContrast    bool
	minText       float64
	minUI         float64
	suggest       bool
}

func (f *darkFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.intensity, "intensity", "", "Surface depth: subtle, moderate or intense")
	flags.BoolVar(&f.preserveBrand, "preserve-brand", false, "Keep primary and secondary unchanged")
	flags.Float64Var(&f.saturation, "saturation", 0, "Saturation shift for brand and status colours (-100..100)")
	flags.BoolVar(&f.noContrast, "no-contrast", false, "Skip contrast enforcement")
	flags.Float64Var(&f.minText, "min-text-contrast", 0, "Contrast floor for text roles")
	flags.Float64Var(&f.minUI, "min-ui-contrast", 0, "Contrast floor for brand and status roles")
	flags.BoolVar(&f.suggest, "suggest", false, "Start from options suggested for the theme's primary colour")
}

// options layers the flags the user set over the configured options, or
// over suggested ones when --suggest is given.
func (f *darkFlags) options(cmd *cobra.Command, app *AppContext, doc *theme.Document) (darkmode.Options, error) {
	opts, err := app.Config.DarkModeOptions()
	if err != nil {
		return darkmode.Options{}, err
	}

	if f.suggest {
		colors, err := darkmode.ResolveColors(doc)
		if err != nil {
			return darkmode.Options{}, err
		}
		primary, ok := colors.Role(theme.RolePrimary).Get()
		if !ok {
			return darkmode.Options{}, fmt.Errorf("%w: --suggest needs a primary colour", themeerrors.ErrInvalidArgument)
		}
		if opts, err = darkmode.GetSuggestedOptions(primary); err != nil {
			return darkmode.Options{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("intensity") {
		if opts.Intensity, err = darkmode.ParseIntensity(f.intensity); err != nil {
			return darkmode.Options{}, err
		}
	}
	if flags.Changed("preserve-brand") {
		opts.PreserveBrandColors = f.preserveBrand
	}
	if flags.Changed("saturation") {
		opts.SaturationAdjustment = f.saturation
	}
	if flags.Changed("no-contrast") {
		opts.EnsureContrast = !f.noContrast
	}
	if flags.Changed("min-text-contrast") {
		opts.MinTextContrast = f.minText
	}
	if flags.Changed("min-ui-contrast") {
		opts.MinUIContrast = f.minUI
	}

	return opts, opts.Validate()
}

type darkOptions struct {
	darkFlags
	format string
	output string
}

func newDarkCmd(root *rootFlags) *cobra.Command {
	opts := darkOptions{}

	cmd := &cobra.Command{
		Use:   "dark <theme-file|preset:name>",
		Short: "Synthesize a dark overlay and print the resulting theme",
		Long: `dark derives dark colours from the theme's light palette, raises contrast
where it falls below the configured floors, and prints the theme with an
enabled darkMode block. Pairs that could not reach their floor are logged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDark(cmd, root, &opts, args[0])
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json or yaml (default from --output extension, else json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the theme to a file instead of stdout")

	return cmd
}

func runDark(cmd *cobra.Command, root *rootFlags, opts *darkOptions, source string) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	format := apptheme.FormatForPath(opts.output)
	if opts.format != "" {
		if format, err = apptheme.ParseFormat(opts.format); err != nil {
			return newCommandError("choose output format", opts.format, err, "Use --format json or --format yaml")
		}
	}

	doc, err := loadTheme(cmd.Context(), app, source)
	if err != nil {
		return err
	}

	dmOpts, err := opts.options(cmd, app, doc)
	if err != nil {
		return newCommandError("configure dark mode", source, err, "Check --intensity and that contrast floors lie between 1 and 21")
	}

	dark, _, err := app.Themes.GenerateDark(cmd.Context(), doc, dmOpts)
	if err != nil {
		return newCommandError("generate dark mode", source, err, "Run 'themekit validate "+source+"' to check the theme's colours")
	}

	data, err := apptheme.Marshal(dark, format)
	if err != nil {
		return newCommandError("encode theme", string(format), err, "Use --format json or --format yaml")
	}
	return writeOutput(cmd, opts.output, data)
}
