// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

// State is the controller's open/closed state machine.
type State int

// Controller states.
const (
	StateClosed State = iota
	StateOpen
)

// Key constants for the trigger-element keyboard contract.
const (
	KeyEnter  = "enter"
	KeySpace  = " "
	KeyEscape = "esc"
)

// Controller owns the widget's interaction state: the open/closed flag, the
// raw search query, and the one-shot arms set on each transition to Open.
// It delegates selection changes to the Selection model and rejects
// disabled rows before they reach it.
type Controller struct {
	selection  *Selection
	state      State
	searchable bool
	query      string

	// One-shot flags armed on Closed->Open, consumed by the view layer
	// after the row list has been materialized.
	scrollArmed bool
	focusArmed  bool
}

// NewController creates a closed controller with an empty selection.
func NewController(mode Mode, searchable bool) *Controller {
	return &Controller{
		selection:  NewSelection(mode),
		state:      StateClosed,
		searchable: searchable,
	}
}

// Selection exposes the underlying selection model.
func (c *Controller) Selection() *Selection {
	return c.selection
}

// State returns the current open/closed state.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the option list is expanded.
func (c *Controller) IsOpen() bool {
	return c.state == StateOpen
}

// Searchable reports whether the widget has a search field.
func (c *Controller) Searchable() bool {
	return c.searchable
}

// Query returns the raw search text as entered. Normalization happens
// downstream in Filter.
func (c *Controller) Query() string {
	return c.query
}

// SetQuery stores the raw search text verbatim. It never touches the
// current selection.
func (c *Controller) SetQuery(text string) {
	c.query = text
}

// Open transitions Closed->Open and arms the one-shot scroll flag, plus the
// one-shot search-focus flag when search is enabled. Opening an already
// open controller is a no-op.
func (c *Controller) Open() {
	if c.state == StateOpen {
		return
	}

	c.state = StateOpen
	c.scrollArmed = true
	c.focusArmed = c.searchable
}

// Close transitions to Closed unconditionally, clears the one-shot arms,
// and resets the search query to empty.
func (c *Controller) Close() {
	c.state = StateClosed
	c.scrollArmed = false
	c.focusArmed = false
	c.query = ""
}

// ToggleOpen flips between Closed and Open.
func (c *Controller) ToggleOpen() {
	if c.state == StateOpen {
		c.Close()
	} else {
		c.Open()
	}
}

// SelectRow toggles the row's item per the selection mode. Disabled rows
// and group headers are ignored. In single mode a selection also closes
// the dropdown.
func (c *Controller) SelectRow(row Row, items []Item) {
	if !row.Selectable() {
		return
	}

	c.selection.Toggle(row.Item.Value, items)

	if c.selection.Mode() == ModeSingle {
		c.Close()
	}
}

// ScrollTarget consumes the one-shot scroll arm and returns the value of
// the first currently-selected item in item-list order. It fires at most
// once per Open transition; with no selection it disarms without a target.
func (c *Controller) ScrollTarget(items []Item) (string, bool) {
	if !c.scrollArmed {
		return "", false
	}

	c.scrollArmed = false

	for _, item := range items {
		if c.selection.IsSelected(item.Value) {
			return item.Value, true
		}
	}

	return "", false
}

// ConsumeFocusSearch consumes the one-shot search-focus arm set on open.
func (c *Controller) ConsumeFocusSearch() bool {
	armed := c.focusArmed
	c.focusArmed = false

	return armed
}

// HandleTriggerKey applies the trigger-element keyboard contract:
// Enter and Space toggle open/closed, Escape closes when open. It reports
// whether the key was handled, so the caller can suppress the default
// action for handled keys.
func (c *Controller) HandleTriggerKey(key string) bool {
	switch key {
	case KeyEnter, KeySpace:
		c.ToggleOpen()

		return true
	case KeyEscape:
		if c.state == StateOpen {
			c.Close()

			return true
		}
	}

	return false
}
