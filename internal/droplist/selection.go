// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

// ChangeFunc observes selection changes. It receives the full current
// selection as an ordered list of values after every successful toggle.
type ChangeFunc func(values []string)

// Selection holds the canonical selected value(s) for single or multi mode.
// Storage order is irrelevant; Values reports selected values in item-list
// order. Disabled rows are rejected by the Controller before they reach
// Toggle.
type Selection struct {
	mode     Mode
	selected map[string]struct{}
	onChange ChangeFunc
}

// NewSelection creates an empty selection for the given mode.
func NewSelection(mode Mode) *Selection {
	return &Selection{
		mode:     mode,
		selected: make(map[string]struct{}),
	}
}

// Mode returns the current selection mode.
func (s *Selection) Mode() Mode {
	return s.mode
}

// SetMode switches the selection mode. Existing selection is kept as-is;
// reconciliation is externally driven in the controlled variant.
func (s *Selection) SetMode(mode Mode) {
	s.mode = mode
}

// OnChange registers the change observer. A nil observer disables emission.
func (s *Selection) OnChange(fn ChangeFunc) {
	s.onChange = fn
}

// IsSelected reports whether value is currently selected.
func (s *Selection) IsSelected(value string) bool {
	_, ok := s.selected[value]

	return ok
}

// Len returns the number of selected values.
func (s *Selection) Len() int {
	return len(s.selected)
}

// Values returns the selected values in item-list order. Single mode yields
// zero or one value.
func (s *Selection) Values(items []Item) []string {
	values := make([]string, 0, len(s.selected))

	for _, item := range items {
		if s.IsSelected(item.Value) {
			values = append(values, item.Value)
		}
	}

	return values
}

// Toggle flips the selection state of value per the current mode and emits
// the new selection. Single mode: selecting an already-selected value clears
// the selection, anything else replaces it. Multi mode: membership is
// flipped. The items list supplies display order for the emission.
func (s *Selection) Toggle(value string, items []Item) {
	switch s.mode {
	case ModeSingle:
		already := s.IsSelected(value)

		clear(s.selected)

		if !already {
			s.selected[value] = struct{}{}
		}
	case ModeMulti:
		if s.IsSelected(value) {
			delete(s.selected, value)
		} else {
			s.selected[value] = struct{}{}
		}
	}

	s.emit(items)
}

// Set replaces the selection with the given values without emitting. Used by
// the controlled variant where selection state is externally owned.
func (s *Selection) Set(values []string) {
	clear(s.selected)

	for _, value := range values {
		s.selected[value] = struct{}{}

		if s.mode == ModeSingle {
			break
		}
	}
}

func (s *Selection) emit(items []Item) {
	if s.onChange != nil {
		s.onChange(s.Values(items))
	}
}
