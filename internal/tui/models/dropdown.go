// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/janderssonse/droplist/internal/droplist"
	"github.com/janderssonse/droplist/internal/tui/styles"
)

// Status indicators for option rows.
const (
	MarkerSelected   = "✓"
	MarkerUnselected = "○"
	CursorPrefix     = "❯ "
)

// Panel geometry.
const (
	maxVisibleRows = 8
	markerWidth    = 4 // cursor prefix + marker + space
)

// DropdownConfig describes one dropdown widget instance.
type DropdownConfig struct {
	ID          string
	Placeholder string
	Mode        droplist.Mode
	Searchable  bool
	Items       []droplist.Item
	Groups      []droplist.Group
	GroupKey    droplist.GroupKeyFunc
	More        droplist.MoreFunc
}

// DropdownKeyMap defines key bindings for an open dropdown.
type DropdownKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
	Search key.Binding
}

// DefaultDropdownKeyMap returns the default key bindings.
func DefaultDropdownKeyMap() DropdownKeyMap {
	return DropdownKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(KeyEnter, KeySpace),
			key.WithHelp("enter/space", "toggle"),
		),
		Close: key.NewBinding(
			key.WithKeys(KeyEsc),
			key.WithHelp("esc", "close"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
	}
}

// Dropdown renders one select widget: a collapsed trigger line and, when
// open, a scrollable option panel with optional search. All selection and
// row derivation lives in the droplist core; this model only translates
// Bubble Tea messages into controller calls and paints the derived rows.
type Dropdown struct {
	styles *styles.Styles
	config DropdownConfig
	keyMap DropdownKeyMap

	ctrl     *droplist.Controller
	rows     []droplist.Row
	cursor   int
	viewport viewport.Model
	search   textinput.Model
	focused  bool
	width    int

	// Selection emission captured from the core observer, drained into a
	// SelectionChangedMsg command on the next update.
	pending    []string
	pendingSet bool
}

// NewDropdown creates a dropdown from its configuration.
func NewDropdown(styleConfig *styles.Styles, config DropdownConfig) *Dropdown {
	search := textinput.New()
	search.Placeholder = "Search…"
	search.Prompt = "/ "
	search.CharLimit = 64

	dropdown := &Dropdown{
		styles:   styleConfig,
		config:   config,
		keyMap:   DefaultDropdownKeyMap(),
		ctrl:     droplist.NewController(config.Mode, config.Searchable),
		viewport: viewport.New(40, maxVisibleRows),
		search:   search,
		width:    40,
	}

	dropdown.ctrl.Selection().OnChange(func(values []string) {
		dropdown.pending = values
		dropdown.pendingSet = true
	})

	dropdown.refresh()

	return dropdown
}

// ID returns the widget identifier used in SelectionChangedMsg.
func (d *Dropdown) ID() string {
	return d.config.ID
}

// Focus gives the widget keyboard focus.
func (d *Dropdown) Focus() {
	d.focused = true
}

// Blur removes keyboard focus and collapses the panel.
func (d *Dropdown) Blur() {
	d.focused = false

	if d.ctrl.IsOpen() {
		d.closePanel()
	}
}

// Focused reports whether the widget has keyboard focus.
func (d *Dropdown) Focused() bool {
	return d.focused
}

// IsOpen reports whether the option panel is expanded.
func (d *Dropdown) IsOpen() bool {
	return d.ctrl.IsOpen()
}

// SelectedValues returns the current selection in item-list order.
func (d *Dropdown) SelectedValues() []string {
	return d.ctrl.Selection().Values(d.config.Items)
}

// SetSelectedValues replaces the selection from outside without emitting a
// change (controlled-component pattern).
func (d *Dropdown) SetSelectedValues(values []string) {
	d.ctrl.Selection().Set(values)
	d.refresh()
}

// Rows returns the currently materialized render rows.
func (d *Dropdown) Rows() []droplist.Row {
	return d.rows
}

// SetWidth resizes the trigger and panel.
func (d *Dropdown) SetWidth(width int) {
	if width < 10 {
		width = 10
	}

	d.width = width
	d.viewport.Width = width
	d.refresh()
}

// DisplayValue returns the collapsed trigger summary.
func (d *Dropdown) DisplayValue() string {
	labels := droplist.SelectedLabels(d.config.Items, d.SelectedValues())

	return droplist.DisplayValue(labels, d.config.Placeholder, d.config.More)
}

// Update handles messages for the dropdown.
func (d *Dropdown) Update(msg tea.Msg) (*Dropdown, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.focused {
		return d, nil
	}

	if !d.ctrl.IsOpen() {
		return d.handleClosedKey(keyMsg)
	}

	if d.search.Focused() {
		return d.handleSearchKey(keyMsg)
	}

	return d.handleOpenKey(keyMsg)
}

// View renders the trigger line plus the expanded panel when open.
func (d *Dropdown) View() string {
	var builder strings.Builder

	builder.WriteString(d.renderTrigger())

	if d.ctrl.IsOpen() {
		builder.WriteString("\n")

		if d.config.Searchable {
			builder.WriteString(d.search.View())
			builder.WriteString("\n")
		}

		builder.WriteString(d.styles.Panel.Render(d.viewport.View()))
	}

	return builder.String()
}

// handleClosedKey applies the trigger-element keyboard contract while the
// panel is collapsed.
func (d *Dropdown) handleClosedKey(msg tea.KeyMsg) (*Dropdown, tea.Cmd) {
	if !d.ctrl.HandleTriggerKey(msg.String()) {
		return d, nil
	}

	if !d.ctrl.IsOpen() {
		return d, nil
	}

	d.refresh()

	return d, d.consumeArms()
}

// handleOpenKey processes list navigation while the panel is expanded.
func (d *Dropdown) handleOpenKey(msg tea.KeyMsg) (*Dropdown, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keyMap.Close):
		d.closePanel()

		return d, nil
	case key.Matches(msg, d.keyMap.Up):
		d.moveCursor(-1)

		return d, nil
	case key.Matches(msg, d.keyMap.Down):
		d.moveCursor(1)

		return d, nil
	case key.Matches(msg, d.keyMap.Select):
		return d, d.selectCursorRow()
	case key.Matches(msg, d.keyMap.Search) && d.config.Searchable:
		d.search.Focus()

		return d, textinput.Blink
	}

	return d, nil
}

// handleSearchKey routes keys to the search input, keeping cursor movement
// and selection available while typing.
func (d *Dropdown) handleSearchKey(msg tea.KeyMsg) (*Dropdown, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		d.closePanel()

		return d, nil
	case KeyEnter:
		return d, d.selectCursorRow()
	case "up":
		d.moveCursor(-1)

		return d, nil
	case "down":
		d.moveCursor(1)

		return d, nil
	case KeyTab:
		d.search.Blur()

		return d, nil
	}

	var cmd tea.Cmd

	d.search, cmd = d.search.Update(msg)
	d.ctrl.SetQuery(d.search.Value())
	d.cursor = 0
	d.refresh()

	return d, cmd
}

// selectCursorRow toggles the row under the cursor. Disabled rows and group
// headers are rejected by the controller.
func (d *Dropdown) selectCursorRow() tea.Cmd {
	if d.cursor < 0 || d.cursor >= len(d.rows) {
		return nil
	}

	d.ctrl.SelectRow(d.rows[d.cursor], d.config.Items)

	if !d.ctrl.IsOpen() {
		// Single-mode selection closed the panel; mirror the query reset.
		d.search.SetValue("")
		d.search.Blur()
	}

	d.refresh()

	return d.drainChange()
}

// closePanel collapses the panel and resets transient search state.
func (d *Dropdown) closePanel() {
	d.ctrl.Close()
	d.search.SetValue("")
	d.search.Blur()
	d.cursor = 0
}

// moveCursor shifts the cursor over option rows, skipping group headers.
func (d *Dropdown) moveCursor(direction int) {
	next := d.cursor + direction

	for next >= 0 && next < len(d.rows) && d.rows[next].Kind == droplist.RowGroupHeader {
		next += direction
	}

	if next < 0 || next >= len(d.rows) {
		return
	}

	d.cursor = next
	d.ensureCursorVisible()
	d.viewport.SetContent(d.renderRows())
}

// refresh recomputes the derived row list from current state. Rows are
// transient: fully rebuilt on every relevant input change.
func (d *Dropdown) refresh() {
	visible := droplist.Filter(d.config.Items, d.ctrl.Query(), d.config.Searchable)

	if d.config.GroupKey != nil {
		buckets := droplist.ProjectGroups(visible, d.config.Groups, d.config.GroupKey)
		d.rows = droplist.BuildGroupedRows(buckets)
	} else {
		d.rows = droplist.BuildRows(visible)
	}

	if d.cursor >= len(d.rows) {
		d.cursor = len(d.rows) - 1
	}

	if d.cursor < 0 {
		d.cursor = 0
	}

	// Cursor never rests on a header when options exist below it.
	if d.cursor < len(d.rows) && d.rows[d.cursor].Kind == droplist.RowGroupHeader {
		d.moveCursorOffHeader()
	}

	height := len(d.rows)
	if height > maxVisibleRows {
		height = maxVisibleRows
	}

	if height < 1 {
		height = 1
	}

	d.viewport.Height = height
	d.viewport.SetContent(d.renderRows())
}

func (d *Dropdown) moveCursorOffHeader() {
	for i := d.cursor; i < len(d.rows); i++ {
		if d.rows[i].Kind == droplist.RowOption {
			d.cursor = i

			return
		}
	}
}

// consumeArms services the one-shot flags set by the Open transition, after
// the row list has been materialized: scroll the first selected row into
// view and focus the search input. The scroll target is re-derived from
// this render pass and not retained.
func (d *Dropdown) consumeArms() tea.Cmd {
	if value, ok := d.ctrl.ScrollTarget(d.config.Items); ok {
		target := "option:" + value

		for i, row := range d.rows {
			if row.Key() == target {
				d.cursor = i
				d.ensureCursorVisible()
				d.viewport.SetContent(d.renderRows())

				break
			}
		}
	}

	if d.ctrl.ConsumeFocusSearch() {
		d.search.Focus()

		return textinput.Blink
	}

	return nil
}

// ensureCursorVisible adjusts the viewport offset so the cursor row is on
// screen. Each row renders as exactly one line, so row index equals content
// line index.
func (d *Dropdown) ensureCursorVisible() {
	top := d.viewport.YOffset
	bottom := top + d.viewport.Height - 1

	if d.cursor < top {
		d.viewport.SetYOffset(d.cursor)
	} else if d.cursor > bottom {
		d.viewport.SetYOffset(d.cursor - d.viewport.Height + 1)
	}
}

// drainChange converts a captured selection emission into a command.
func (d *Dropdown) drainChange() tea.Cmd {
	if !d.pendingSet {
		return nil
	}

	changed := SelectionChangedMsg{ID: d.config.ID, Values: d.pending}
	d.pending = nil
	d.pendingSet = false

	return func() tea.Msg {
		return changed
	}
}

// renderTrigger paints the collapsed summary line.
func (d *Dropdown) renderTrigger() string {
	arrow := " ▾"
	if d.ctrl.IsOpen() {
		arrow = " ▴"
	}

	summary := runewidth.Truncate(d.DisplayValue(), d.width-markerWidth, "…")

	style := d.styles.Trigger
	if d.focused {
		style = style.BorderForeground(d.styles.Primary)
	}

	return style.Width(d.width).Render(summary + arrow)
}

// renderRows paints the materialized rows, one line each.
func (d *Dropdown) renderRows() string {
	var builder strings.Builder

	for rowIndex, row := range d.rows {
		if rowIndex > 0 {
			builder.WriteString("\n")
		}

		if row.Kind == droplist.RowGroupHeader {
			builder.WriteString(d.renderGroupHeader(row))

			continue
		}

		builder.WriteString(d.renderOption(rowIndex, row))
	}

	if len(d.rows) == 0 {
		builder.WriteString(d.styles.MutedText.Render("  no matches"))
	}

	return builder.String()
}

func (d *Dropdown) renderGroupHeader(row droplist.Row) string {
	label := runewidth.Truncate(row.Label, d.width-markerWidth, "…")

	if row.Disabled {
		return d.styles.Disabled.Render(label)
	}

	return d.styles.GroupHeader.Render(label)
}

func (d *Dropdown) renderOption(rowIndex int, row droplist.Row) string {
	marker := MarkerUnselected
	if d.ctrl.Selection().IsSelected(row.Item.Value) {
		marker = MarkerSelected
	}

	prefix := "  "
	if rowIndex == d.cursor {
		prefix = CursorPrefix
	}

	indent := ""
	if row.GroupKey != "" {
		indent = "  "
	}

	label := runewidth.Truncate(row.Item.Label, d.width-markerWidth-len(indent), "…")
	line := prefix + indent + marker + " " + label

	switch {
	case row.Disabled:
		return d.styles.Disabled.Render(line)
	case rowIndex == d.cursor:
		return d.styles.Selected.Render(line)
	default:
		return d.styles.Unselected.Render(line)
	}
}
