package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/themekit/internal/app/theme"
	"github.com/alexisbeaulieu97/themekit/internal/lint"
	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

var errThemeInvalid = errors.New("theme has problems")

type validateOptions struct {
	json   bool
	strict bool
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <theme-file|preset:name>",
		Short: "Report structural problems and contrast findings for a theme",
		Long: `validate sanitizes the theme and reports every structural problem it finds.
A theme that sanitizes cleanly is then checked for contrast in light mode and,
when it carries an enabled overlay, in dark mode. Exits non-zero when any
issue is found; warnings only fail with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Output results in JSON format")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat contrast warnings as failures")

	return cmd
}

type validateJSON struct {
	Valid    bool           `json:"valid"`
	Errors   []string       `json:"errors"`
	Findings []lint.Finding `json:"findings"`
}

func runValidate(cmd *cobra.Command, root *rootFlags, opts validateOptions, source string) error {
	app, err := newAppContext(cmd, root)
	if err != nil {
		return err
	}

	outcome, err := app.Themes.Validate(cmd.Context(), source)
	if err != nil {
		return newCommandError("validate theme", source, err, "Check that the file exists and is valid JSON or YAML")
	}

	valid := outcome.Valid()
	if valid && opts.strict && outcome.Lint.Count(lint.SeverityWarning) > 0 {
		valid = false
	}

	out := cmd.OutOrStdout()
	if opts.json {
		payload := validateJSON{Valid: valid, Errors: outcome.Sanitize.Messages(), Findings: []lint.Finding{}}
		if outcome.Lint != nil {
			payload.Findings = outcome.Lint.Findings
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else if err := printValidation(out, outcome, valid); err != nil {
		return err
	}

	if !valid {
		return newCommandError("validate theme", source, errThemeInvalid, "Fix the reported problems and run validate again")
	}
	return nil
}

func printValidation(out io.Writer, outcome apptheme.ValidateOutcome, valid bool) error {
	// Findings are drawn in the theme's own colours when it is usable.
	doc := outcome.Sanitize.Theme
	if doc == nil {
		doc = theme.Default()
	}
	r, err := render.New(out, doc)
	if err != nil {
		if r, err = render.New(out, theme.Default()); err != nil {
			return err
		}
	}
	r.SetUnicode(isTerminal(out))

	for _, msg := range outcome.Sanitize.Messages() {
		fmt.Fprintln(out, r.Alert(render.AlertIssue, msg))
	}
	if outcome.Lint != nil {
		for _, f := range outcome.Lint.Findings {
			kind := render.AlertWarning
			if f.Severity == lint.SeverityIssue {
				kind = render.AlertIssue
			}
			fmt.Fprintln(out, r.Alert(kind, fmt.Sprintf("[%s] %s", f.Mode, f.Message)))
		}
	}

	if valid {
		fmt.Fprintln(out, r.Alert(render.AlertInfo, "theme is valid"))
	}
	return nil
}
