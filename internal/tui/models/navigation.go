// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models defines shared navigation messages between UI screens.
package models

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen int
}

// Screen constants for navigation.
const (
	DemoScreen = iota
	HelpScreen
)

// Key constants for common key inputs.
const (
	KeyCtrlC = "ctrl+c"
	KeyEnter = "enter"
	KeyEsc   = "esc"
	KeySpace = " "
	KeyTab   = "tab"
)

// SelectionChangedMsg carries the full current selection of one dropdown,
// emitted on every successful selection toggle.
type SelectionChangedMsg struct {
	ID     string
	Values []string
}
