// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRowsUngrouped(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Label: "A", Value: "a"},
		{Label: "B", Value: "b", Disabled: true},
	}

	rows := BuildRows(items)

	require.Len(t, rows, 2)

	for i, row := range rows {
		assert.Equal(t, RowOption, row.Kind)
		assert.Empty(t, row.GroupKey)
		assert.Equal(t, items[i], row.Item)
	}

	assert.False(t, rows[0].Disabled)
	assert.True(t, rows[1].Disabled)
}

func TestBuildGroupedRowsInterleavesHeaders(t *testing.T) {
	t.Parallel()

	buckets := []GroupBucket{
		{Key: "north", Label: "North", Items: []Item{
			{Label: "A", Value: "a"},
			{Label: "B", Value: "b"},
		}},
		{Key: "south", Label: "South", Disabled: true, Items: []Item{
			{Label: "C", Value: "c"},
		}},
	}

	rows := BuildGroupedRows(buckets)

	require.Len(t, rows, 5)

	assert.Equal(t, RowGroupHeader, rows[0].Kind)
	assert.Equal(t, "North", rows[0].Label)
	assert.Equal(t, RowOption, rows[1].Kind)
	assert.Equal(t, "north", rows[1].GroupKey)
	assert.Equal(t, RowOption, rows[2].Kind)

	assert.Equal(t, RowGroupHeader, rows[3].Kind)
	assert.True(t, rows[3].Disabled)

	// Every option under a disabled group is disabled regardless of its
	// own flag.
	assert.Equal(t, RowOption, rows[4].Kind)
	assert.True(t, rows[4].Disabled)
	assert.False(t, rows[4].Item.Disabled)
}

func TestRowKeysAreStable(t *testing.T) {
	t.Parallel()

	header := Row{Kind: RowGroupHeader, GroupKey: "north"}
	option := Row{Kind: RowOption, Item: Item{Value: "a"}}

	assert.Equal(t, "group:north", header.Key())
	assert.Equal(t, "option:a", option.Key())
}

func TestRowSelectable(t *testing.T) {
	t.Parallel()

	assert.False(t, Row{Kind: RowGroupHeader}.Selectable())
	assert.False(t, Row{Kind: RowOption, Disabled: true}.Selectable())
	assert.True(t, Row{Kind: RowOption}.Selectable())
}
