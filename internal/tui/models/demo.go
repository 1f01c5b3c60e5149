// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/janderssonse/droplist/internal/config"
	"github.com/janderssonse/droplist/internal/droplist"
	"github.com/janderssonse/droplist/internal/tui/styles"
)

// Widget identifiers used in SelectionChangedMsg.
const (
	DistrictWidgetID = "district"
	AreaWidgetID     = "area"
)

// Demo layout.
const (
	demoWidgetWidth = 44
	GoodbyeMessage  = "Goodbye!\n"
)

// Demo wires two dropdowns into the cascading district/area screen: picking
// districts upstream constrains which area selections stay valid downstream.
type Demo struct {
	styles   *styles.Styles
	catalog  *config.Catalog
	district *Dropdown
	area     *Dropdown
	width    int
	height   int
	quitting bool
}

// NewDemo creates the demo screen from a validated catalog.
func NewDemo(styleConfig *styles.Styles, catalog *config.Catalog) *Demo {
	more := func(n int) string {
		return fmt.Sprintf("и еще %d", n)
	}

	districtItems := make([]droplist.Item, 0, len(catalog.Districts))
	groups := make([]droplist.Group, 0, len(catalog.Districts))

	for _, district := range catalog.Districts {
		districtItems = append(districtItems, droplist.Item{
			Label:    district.Label,
			Value:    district.Key,
			Disabled: district.Disabled,
		})
		groups = append(groups, droplist.Group{
			Key:      district.Key,
			Label:    district.Label,
			Disabled: district.Disabled,
		})
	}

	areaItems := make([]droplist.Item, 0, len(catalog.Areas))

	for _, area := range catalog.Areas {
		areaItems = append(areaItems, droplist.Item{
			Label:    area.Label,
			Value:    area.Value,
			Disabled: area.Disabled,
		})
	}

	district := NewDropdown(styleConfig, DropdownConfig{
		ID:          DistrictWidgetID,
		Placeholder: "Выберите район",
		Mode:        droplist.ModeMulti,
		Searchable:  true,
		Items:       districtItems,
		More:        more,
	})

	area := NewDropdown(styleConfig, DropdownConfig{
		ID:          AreaWidgetID,
		Placeholder: "Выберите участок",
		Mode:        droplist.ModeMulti,
		Searchable:  true,
		Items:       areaItems,
		Groups:      groups,
		GroupKey: func(item droplist.Item) (string, bool) {
			return catalog.DistrictOf(item.Value)
		},
		More: more,
	})

	district.Focus()

	return &Demo{
		styles:   styleConfig,
		catalog:  catalog,
		district: district,
		area:     area,
	}
}

// Init initializes the demo model.
func (m *Demo) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Demo model.
func (m *Demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case SelectionChangedMsg:
		return m.handleSelectionChanged(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View renders the two labeled dropdowns and the selection status footer.
func (m *Demo) View() string {
	if m.quitting {
		return GoodbyeMessage
	}

	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Cascading selection"))
	builder.WriteString("\n\n")

	builder.WriteString(m.styles.Subtitle.Render("Район"))
	builder.WriteString("\n")
	builder.WriteString(m.district.View())
	builder.WriteString("\n\n")

	builder.WriteString(m.styles.Subtitle.Render("Участок"))
	builder.WriteString("\n")
	builder.WriteString(m.area.View())
	builder.WriteString("\n\n")

	builder.WriteString(m.renderStatus())
	builder.WriteString("\n")
	builder.WriteString(m.renderFooter())

	return builder.String()
}

// Districts exposes the upstream dropdown for the app shell and tests.
func (m *Demo) Districts() *Dropdown {
	return m.district
}

// Areas exposes the downstream dropdown for the app shell and tests.
func (m *Demo) Areas() *Dropdown {
	return m.area
}

// handleSelectionChanged reacts to dropdown emissions delivered through the
// program loop. Key handling already pruned inside the update that changed
// the district selection; this rerun is idempotent and covers district
// changes that arrive as messages rather than key input.
func (m *Demo) handleSelectionChanged(msg SelectionChangedMsg) (tea.Model, tea.Cmd) {
	if msg.ID != DistrictWidgetID {
		return m, nil
	}

	pruned := droplist.PruneCascade(m.area.SelectedValues(), msg.Values, m.catalog.DistrictOf)
	m.area.SetSelectedValues(pruned)

	return m, nil
}

// pruneAreas drops area selections whose owning district is no longer
// selected. Called in the same update cycle that changed the district
// selection, so an orphaned area value is never rendered.
func (m *Demo) pruneAreas() {
	pruned := droplist.PruneCascade(m.area.SelectedValues(), m.district.SelectedValues(), m.catalog.DistrictOf)
	m.area.SetSelectedValues(pruned)
}

func (m *Demo) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyCtrlC {
		m.quitting = true

		return m, tea.Quit
	}

	focused := m.focusedDropdown()

	if !focused.IsOpen() {
		switch msg.String() {
		case "q":
			m.quitting = true

			return m, tea.Quit
		case "?":
			return m, func() tea.Msg {
				return NavigateMsg{Screen: HelpScreen}
			}
		case KeyTab:
			m.switchFocus()

			return m, nil
		}
	}

	updated, cmd := focused.Update(msg)
	_ = updated // Same pointer; Dropdown mutates in place.

	if focused == m.district {
		m.pruneAreas()
	}

	return m, cmd
}

func (m *Demo) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	width := demoWidgetWidth
	if msg.Width > 0 && msg.Width-4 < width {
		width = msg.Width - 4
	}

	m.district.SetWidth(width)
	m.area.SetWidth(width)

	return m, nil
}

func (m *Demo) focusedDropdown() *Dropdown {
	if m.area.Focused() {
		return m.area
	}

	return m.district
}

func (m *Demo) switchFocus() {
	if m.district.Focused() {
		m.district.Blur()
		m.area.Focus()
	} else {
		m.area.Blur()
		m.district.Focus()
	}
}

func (m *Demo) renderStatus() string {
	districts := strings.Join(m.district.SelectedValues(), ", ")
	areas := strings.Join(m.area.SelectedValues(), ", ")

	if districts == "" {
		districts = "—"
	}

	if areas == "" {
		areas = "—"
	}

	return m.styles.MutedText.Render(fmt.Sprintf("districts: %s  areas: %s", districts, areas))
}

func (m *Demo) renderFooter() string {
	bindings := []string{
		m.styles.Keybinding("tab", "switch field"),
		m.styles.Keybinding("enter/space", "open · toggle"),
		m.styles.Keybinding("/", "search"),
		m.styles.Keybinding("esc", "close"),
		m.styles.Keybinding("?", "help"),
		m.styles.Keybinding("q", "quit"),
	}

	return strings.Join(bindings, "  ")
}
