// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testItems() []Item {
	return []Item{
		{Label: "A", Value: "a"},
		{Label: "B", Value: "b"},
		{Label: "C", Value: "c"},
	}
}

func TestSingleToggleReplacesAndClears(t *testing.T) {
	t.Parallel()

	items := testItems()
	sel := NewSelection(ModeSingle)

	sel.Toggle("a", items)
	assert.Equal(t, []string{"a"}, sel.Values(items))

	// Selecting another value replaces the previous one.
	sel.Toggle("b", items)
	assert.Equal(t, []string{"b"}, sel.Values(items))

	// Selecting the current value again clears the selection.
	sel.Toggle("b", items)
	assert.Empty(t, sel.Values(items))
}

func TestMultiToggleFlipsMembership(t *testing.T) {
	t.Parallel()

	items := testItems()
	sel := NewSelection(ModeMulti)

	sel.Toggle("a", items)
	sel.Toggle("c", items)
	assert.Equal(t, []string{"a", "c"}, sel.Values(items))

	// Round-trip: toggling again restores the prior state.
	sel.Toggle("c", items)
	assert.Equal(t, []string{"a"}, sel.Values(items))
}

func TestValuesFollowItemListOrder(t *testing.T) {
	t.Parallel()

	items := testItems()
	sel := NewSelection(ModeMulti)

	// Select out of display order; Values must follow the item list.
	sel.Toggle("c", items)
	sel.Toggle("a", items)
	assert.Equal(t, []string{"a", "c"}, sel.Values(items))
}

func TestToggleEmitsFullSelection(t *testing.T) {
	t.Parallel()

	items := testItems()
	sel := NewSelection(ModeMulti)

	var emitted [][]string

	sel.OnChange(func(values []string) {
		emitted = append(emitted, values)
	})

	sel.Toggle("a", items)
	sel.Toggle("c", items)
	sel.Toggle("a", items)

	assert.Equal(t, [][]string{{"a"}, {"a", "c"}, {"c"}}, emitted)
}

func TestSetReplacesWithoutEmitting(t *testing.T) {
	t.Parallel()

	items := testItems()
	sel := NewSelection(ModeMulti)

	emissions := 0

	sel.OnChange(func([]string) { emissions++ })

	sel.Set([]string{"b", "c"})
	assert.Equal(t, []string{"b", "c"}, sel.Values(items))
	assert.Zero(t, emissions)
}

func TestSetInSingleModeKeepsFirstValue(t *testing.T) {
	t.Parallel()

	items := testItems()
	sel := NewSelection(ModeSingle)

	sel.Set([]string{"b", "c"})
	assert.Equal(t, []string{"b"}, sel.Values(items))
}
