package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/render"
)

// View renders the current state of the model.
func (m Explorer) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.status()}

	if m.err != nil || m.renderer == nil {
		sections = append(sections, fmt.Sprintf("synthesis failed: %v", m.err))
	} else {
		m.renderer.SetDark(m.dark)
		showcase, err := m.renderer.Showcase()
		if err != nil {
			showcase = m.renderer.Alert(render.AlertIssue, err.Error())
		}
		sections = append(sections, showcase, m.renderer.ContrastTable(m.preview.ContrastReport))

		for _, a := range m.preview.Adjustments {
			if !a.Met {
				sections = append(sections, m.renderer.Alert(render.AlertWarning,
					fmt.Sprintf("%s stays at %.2f:1, wanted %.1f:1", a.Pair, a.After, a.Required)))
			}
		}
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Explorer) status() string {
	mode := "light"
	if m.dark {
		mode = "dark"
	}
	parts := []string{
		m.source.Meta.Name,
		mode,
		"intensity " + string(m.opts.Intensity),
		"brand " + onOff(m.opts.PreserveBrandColors),
		"contrast " + onOff(m.opts.EnsureContrast),
	}
	return strings.Join(parts, " · ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
