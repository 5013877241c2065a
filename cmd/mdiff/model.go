package main

import (
	"fmt"
	"path/filepath"

	"charm.land/lipgloss/v2"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/mdiff"
	"go.jacobcolvin.com/mdiff/bubbles/diffviewport"
	"go.jacobcolvin.com/mdiff/style"
)

// model is the Bubble Tea model for the --tui pager.
type model struct {
	sourceName string
	targetName string
	viewport   diffviewport.Model
	statusBar  lipgloss.Style
	width      int
	height     int
}

func newModel(sourceName, targetName, source, target string, d differ, opts []mdiff.Option) model {
	vp := diffviewport.New(
		diffviewport.WithPrinter(d.printer(true)),
		diffviewport.WithDiffOptions(opts...),
	)
	vp.MouseWheelEnabled = true
	vp.SetRevisions(source, target)

	return model{
		sourceName: sourceName,
		targetName: targetName,
		viewport:   vp,
		statusBar:  style.Default(d.mode).LineNumber,
	}
}

// Init implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 1) // Reserve 1 line for status bar.

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) View() tea.View {
	status := fmt.Sprintf(" %s → %s · q: quit",
		filepath.Base(m.sourceName),
		filepath.Base(m.targetName),
	)

	return tea.NewView(m.viewport.View() + "\n" + m.statusBar.Render(status))
}
