// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package stringutil

import "testing"

func TestFoldContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		substr   string
		expected bool
	}{
		{"Hello World", "world", true},
		{"Hello World", "WORLD", true},
		{"Hello World", "foo", false},
		{"ABCD", "bc", true},
		{"Невский", "невск", true},
		{"", "", true},
	}

	for _, tt := range tests {
		result := FoldContains(tt.text, tt.substr)
		if result != tt.expected {
			t.Errorf("FoldContains(%q, %q) = %v, want %v", tt.text, tt.substr, result, tt.expected)
		}
	}
}
