// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config resolves Droplist configuration paths and loads the demo
// catalog.
package config

import (
	"os"
	"path/filepath"
)

// GetXDGConfigHome returns the XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns the XDG config directory with a custom
// environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// UserCatalogPath returns the path of the user's demo catalog file.
func UserCatalogPath() string {
	return filepath.Join(GetXDGConfigHome(), "droplist", "catalog.toml")
}
