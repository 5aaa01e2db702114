package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newCommandError("write output", path, err, "Check that the output directory is writable")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newCommandError("write output", path, err, "Check that the output directory is writable")
	}
	return nil
}

func loadTheme(ctx context.Context, app *AppContext, source string) (*theme.Document, error) {
	doc, err := app.Themes.Load(ctx, source)
	if err != nil {
		return nil, newCommandError("load theme", source, err, "Run 'themekit validate "+source+"' for a full report, or 'themekit presets' to list built-in themes")
	}
	return doc, nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
