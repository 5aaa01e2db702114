package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <brand-hex>",
		Short: "Recommend dark-mode options for a brand colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := darkmode.GetSuggestedOptions(args[0])
			if err != nil {
				return newCommandError("suggest options", args[0], err, "Use a 6-digit hex colour such as #2563eb")
			}

			data, err := yaml.Marshal(opts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
