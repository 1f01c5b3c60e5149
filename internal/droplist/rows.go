// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

// BuildRows flattens filtered items into the ungrouped render sequence:
// one option row per item, in filtered order, with no group key.
func BuildRows(items []Item) []Row {
	rows := make([]Row, 0, len(items))

	for _, item := range items {
		rows = append(rows, Row{
			Kind:     RowOption,
			Item:     item,
			Disabled: item.Disabled,
		})
	}

	return rows
}

// BuildGroupedRows flattens group buckets into the grouped render sequence:
// one group header row per bucket followed by its option rows, preserving
// the bucket order produced by ProjectGroups. Empty buckets never occur in
// that output, so no empty headers are emitted.
func BuildGroupedRows(buckets []GroupBucket) []Row {
	rows := make([]Row, 0, len(buckets)*2)

	for _, bucket := range buckets {
		rows = append(rows, Row{
			Kind:     RowGroupHeader,
			GroupKey: bucket.Key,
			Label:    bucket.Label,
			Disabled: bucket.Disabled,
		})

		for _, item := range bucket.Items {
			rows = append(rows, Row{
				Kind:     RowOption,
				GroupKey: bucket.Key,
				Item:     item,
				Disabled: bucket.ItemDisabled(item),
			})
		}
	}

	return rows
}
