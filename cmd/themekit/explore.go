package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	apptheme "github.com/alexisbeaulieu97/themekit/internal/app/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

type exploreOptions struct {
	darkFlags
	output string
}

var runExplorer = func(m tui.Explorer) (tui.Explorer, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, fmt.Errorf("failed to run explorer: %w", err)
	}
	return final.(tui.Explorer), nil
}

func newExploreCmd(root *rootFlags) *cobra.Command {
	opts := exploreOptions{}

	cmd := &cobra.Command{
		Use:   "explore <theme-file|preset:name>",
		Short: "Tune dark-mode options interactively",
		Long: `explore opens a full-screen view of the theme that re-synthesizes the dark
overlay as options are toggled. Accepting prints the chosen options as YAML,
or writes the dark theme when --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, root, &opts, args[0])
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the accepted dark theme to a file")

	return cmd
}

func runExplore(cmd *cobra.Command, root *rootFlags, opts *exploreOptions, source string) error {
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

	final, err := runExplorer(tui.NewExplorer(cmd.OutOrStdout(), doc, dmOpts))
	if err != nil {
		return err
	}
	if !final.Accepted() {
		return nil
	}

	if opts.output != "" {
		dark, _, err := app.Themes.GenerateDark(cmd.Context(), doc, final.Options())
		if err != nil {
			return newCommandError("generate dark mode", source, err, "Run 'themekit validate "+source+"' to check the theme's colours")
		}
		data, err := apptheme.Marshal(dark, apptheme.FormatForPath(opts.output))
		if err != nil {
			return err
		}
		return writeOutput(cmd, opts.output, data)
	}

	data, err := yaml.Marshal(final.Options())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
