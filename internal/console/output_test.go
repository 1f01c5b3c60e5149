// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMode(t *testing.T) {
	t.Parallel()

	output := &OutputState{}
	output.SetMode(true, false, true)

	assert.True(t, output.Verbose)
	assert.False(t, output.JSON)
	assert.True(t, output.Plain)
}

func TestBoldPassThroughModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output *OutputState
	}{
		{"json mode", &OutputState{JSON: true}},
		{"plain mode", &OutputState{Plain: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "text", tt.output.Bold("text"))
		})
	}
}

func TestBoldFallbackWhenPiped(t *testing.T) {
	t.Parallel()

	output := &OutputState{}

	// Under `go test` stdout is not a TTY, so Bold either uppercases or,
	// with NO_COLOR-style environments, passes through.
	got := output.Bold("version")

	assert.Contains(t, []string{"VERSION", "version"}, got)
}

func TestHeaderMatchesBold(t *testing.T) {
	t.Parallel()

	output := &OutputState{Plain: true}

	assert.Equal(t, output.Bold("Usage"), output.Header("Usage"))
}

func TestBoldNeverChangesContentCase(t *testing.T) {
	t.Parallel()

	output := &OutputState{Plain: true}

	for _, text := range []string{"", "a", "MiXeD"} {
		assert.True(t, strings.EqualFold(text, output.Bold(text)))
	}
}
