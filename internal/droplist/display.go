// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

import (
	"fmt"
	"strings"
)

// Up to this many selected labels are shown verbatim; beyond it the
// summary collapses to the first two plus a "more" phrase.
const maxInlineLabels = 2

// MoreFunc phrases the collapsed tail of a multi-select summary, e.g.
// "and 3 more". The demo supplies a localized variant.
type MoreFunc func(n int) string

// DefaultMore is the English "more" phrase used when no MoreFunc is given.
func DefaultMore(n int) string {
	return fmt.Sprintf("and %d more", n)
}

// SelectedLabels maps ordered selected values to their item labels. Values
// without a matching item are skipped; the widget does not self-prune stale
// selections.
func SelectedLabels(items []Item, values []string) []string {
	byValue := make(map[string]string, len(items))

	for _, item := range items {
		byValue[item.Value] = item.Label
	}

	labels := make([]string, 0, len(values))

	for _, value := range values {
		if label, ok := byValue[value]; ok {
			labels = append(labels, label)
		}
	}

	return labels
}

// DisplayValue renders the collapsed trigger summary: the placeholder when
// nothing is selected, the labels comma-joined when at most two are, and a
// truncated "A, B and N more" summary otherwise.
func DisplayValue(labels []string, placeholder string, more MoreFunc) string {
	if len(labels) == 0 {
		return placeholder
	}

	if len(labels) <= maxInlineLabels {
		return strings.Join(labels, ", ")
	}

	if more == nil {
		more = DefaultMore
	}

	head := strings.Join(labels[:maxInlineLabels], ", ")

	return head + " " + more(len(labels)-maxInlineLabels)
}
