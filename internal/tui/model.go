// Package tui is the interactive dark-mode explorer: it re-runs synthesis as
// options are toggled and draws the result in the theme's own colours.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

var intensities = []darkmode.Intensity{
	darkmode.IntensitySubtle,
	darkmode.IntensityModerate,
	darkmode.IntensityIntense,
}

// Explorer contains the Bubbletea state for the dark-mode explorer.
type Explorer struct {
	out    io.Writer
	source *theme.Document
	opts   darkmode.Options
	dark   bool

	keys keyMap
	help help.Model

	doc      *theme.Document
	preview  darkmode.Preview
	renderer *render.Renderer
	err      error

	accepted bool
	quitting bool
}

// NewExplorer starts from opts with the dark colours shown. out is the writer
// the program renders to; it decides the colour profile.
func NewExplorer(out io.Writer, doc *theme.Document, opts darkmode.Options) Explorer {
	m := Explorer{
		out:    out,
		source: doc,
		opts:   opts,
		dark:   true,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.refresh()
	return m
}

// Init starts the Bubbletea program.
func (m Explorer) Init() tea.Cmd {
	return nil
}

// Options returns the options currently applied.
func (m Explorer) Options() darkmode.Options {
	return m.opts
}

// Document returns the theme with the current synthesized overlay, or nil
// when the last synthesis failed.
func (m Explorer) Document() *theme.Document {
	return m.doc
}

// Accepted reports whether the user left with the accept key.
func (m Explorer) Accepted() bool {
	return m.accepted
}

// Err returns the last synthesis error.
func (m Explorer) Err() error {
	return m.err
}

func (m *Explorer) refresh() {
	m.doc, m.renderer = nil, nil

	dark, err := darkmode.GenerateDarkMode(m.source, m.opts)
	if err != nil {
		m.err = err
		return
	}
	preview, err := darkmode.PreviewDarkMode(m.source, m.opts)
	if err != nil {
		m.err = err
		return
	}
	r, err := render.New(m.out, dark)
	if err != nil {
		m.err = err
		return
	}

	m.doc, m.preview, m.renderer, m.err = dark, preview, r, nil
}

func nextIntensity(current darkmode.Intensity) darkmode.Intensity {
	for i, in := range intensities {
		if in == current {
			return intensities[(i+1)%len(intensities)]
		}
	}
	return darkmode.IntensityModerate
}
