// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		labels   []string
		expected string
	}{
		{"empty falls back to placeholder", nil, "Pick one"},
		{"single label", []string{"A"}, "A"},
		{"two labels comma-joined", []string{"A", "C"}, "A, C"},
		{"truncated beyond two", []string{"A", "B", "C", "D"}, "A, B and 2 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, DisplayValue(tt.labels, "Pick one", nil))
		})
	}
}

func TestDisplayValueLocalizedMore(t *testing.T) {
	t.Parallel()

	more := func(n int) string { return fmt.Sprintf("и еще %d", n) }

	got := DisplayValue([]string{"А", "Б", "В"}, "", more)

	assert.Equal(t, "А, Б и еще 1", got)
}

func TestSelectedLabelsSkipsStaleValues(t *testing.T) {
	t.Parallel()

	items := testItems()

	labels := SelectedLabels(items, []string{"a", "gone", "c"})

	assert.Equal(t, []string{"A", "C"}, labels)
}
