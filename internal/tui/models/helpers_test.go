// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/janderssonse/droplist/internal/config"
)

// keyRunes builds a printable-key message for tests.
func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// keyType builds a special-key message for tests.
func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// testCatalog returns a small fixed catalog for model tests.
func testCatalog() *config.Catalog {
	return &config.Catalog{
		Districts: []config.District{
			{Key: "north", Label: "North"},
			{Key: "south", Label: "South", Disabled: true},
		},
		Areas: []config.Area{
			{Value: "harbor", Label: "Harbor", District: "north"},
			{Value: "hill", Label: "Hill", District: "north"},
			{Value: "docks", Label: "Docks", District: "south"},
		},
	}
}
