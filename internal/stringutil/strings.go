// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string matching helpers for Droplist.
package stringutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldContains checks if text contains substr under Unicode case folding,
// so "ABCD" matches "bc" and Cyrillic labels match lowercased queries.
func FoldContains(text, substr string) bool {
	folder := cases.Fold()

	return strings.Contains(folder.String(text), folder.String(substr))
}
