// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/janderssonse/droplist/internal/tui/styles"
)

const helpWordWrap = 80

const helpMarkdown = `A dropdown/select widget for the terminal: single- and multi-select,
optional grouping, optional search, with a cascading district/area demo.

## Keys

| Key | Action |
|-----|--------|
| tab | switch between the district and area fields |
| enter, space | open the focused dropdown / toggle the row under the cursor |
| j/k, ↓/↑ | move the cursor (group headers are skipped) |
| / | focus the search field of an open dropdown |
| esc | close the open dropdown and clear its search |
| ? | this help |
| q, ctrl+c | quit |

## Behavior

- Single-select closes on selection; selecting the current value clears it.
- Multi-select keeps the panel open and flips membership per toggle.
- A disabled group disables every option rendered under it.
- Deselecting a district immediately removes its areas from the area
  selection.

Custom catalogs: place a TOML file at ` + "`~/.config/droplist/catalog.toml`" + `
or pass ` + "`--catalog path`" + `.
`

// Help renders the markdown help screen with glamour.
type Help struct {
	styles  *styles.Styles
	content string
	width   int
	height  int
}

// NewHelp creates the help model, pre-rendering the markdown content.
func NewHelp(styleConfig *styles.Styles) *Help {
	content := helpMarkdown

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWordWrap),
	)
	if err == nil {
		if rendered, renderErr := renderer.Render(helpMarkdown); renderErr == nil {
			content = rendered
		}
	}

	return &Help{
		styles:  styleConfig,
		content: content,
	}
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case KeyCtrlC:
			return m, tea.Quit
		case KeyEsc, "q", "?":
			return m, func() tea.Msg {
				return NavigateMsg{Screen: DemoScreen}
			}
		}
	}

	return m, nil
}

// View renders the logo above the pre-rendered help content.
func (m *Help) View() string {
	return m.styles.Logo() + "\n" + m.content + "\n" + m.styles.MutedText.Render("esc to return")
}
