// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

// Package droplist implements the reactive state core of the dropdown
// widget: selection, filtering, grouping, and row projection. It knows
// nothing about rendering; the TUI layer consumes its derived rows.
package droplist

// Mode determines how many items may be selected at once.
type Mode int

// Selection modes.
const (
	ModeSingle Mode = iota // At most one selected value
	ModeMulti              // Any number of selected values
)

// Item is a selectable option. Value is the unique key; Label is what the
// user sees. Items are owned by the caller and never mutated.
type Item struct {
	Label    string
	Value    string
	Disabled bool
}

// Group is a named bucket of items. The order of the group list defines
// display order. A disabled group disables every item rendered under it.
type Group struct {
	Key      string
	Label    string
	Disabled bool
}

// GroupKeyFunc extracts the group key for an item. Returning ok=false
// excludes the item from grouped output entirely.
type GroupKeyFunc func(Item) (key string, ok bool)

// RowKind tags the two row variants of the flattened render sequence.
type RowKind int

// Row kinds.
const (
	RowGroupHeader RowKind = iota
	RowOption
)

// Row is one display line of the expanded option list. Rows are transient:
// fully recomputed from upstream state on every change, never mutated.
//
// For RowGroupHeader, GroupKey and Label describe the group. For RowOption,
// Item carries the option and GroupKey names the owning group (empty in
// ungrouped mode). Disabled is the effective flag: group disabled dominates
// the item's own flag.
type Row struct {
	Kind     RowKind
	GroupKey string
	Label    string
	Item     Item
	Disabled bool
}

// Key returns a stable identity for the row, usable for minimal-diff
// re-rendering and scroll targeting. Group rows are keyed by group key,
// option rows by item value.
func (r Row) Key() string {
	if r.Kind == RowGroupHeader {
		return "group:" + r.GroupKey
	}

	return "option:" + r.Item.Value
}

// Selectable reports whether the row can be selected at all.
func (r Row) Selectable() bool {
	return r.Kind == RowOption && !r.Disabled
}
