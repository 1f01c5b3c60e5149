// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

import (
	"strings"

	"github.com/janderssonse/droplist/internal/stringutil"
)

// Filter derives the visible item subset from the raw items and the search
// query. The query is whitespace-trimmed and matched as a case-folded
// substring of the label; no tokenization, no fuzzy matching. When the
// widget is not searchable or the normalized query is empty, the input
// slice is returned unchanged.
func Filter(items []Item, query string, searchable bool) []Item {
	if !searchable {
		return items
	}

	normalized := strings.TrimSpace(query)
	if normalized == "" {
		return items
	}

	matched := make([]Item, 0, len(items))

	for _, item := range items {
		if stringutil.FoldContains(item.Label, normalized) {
			matched = append(matched, item)
		}
	}

	return matched
}
