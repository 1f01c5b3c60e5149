// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	assert.NotEmpty(t, catalog.Districts)
	assert.NotEmpty(t, catalog.Areas)

	// Every area must resolve to a declared district.
	for _, area := range catalog.Areas {
		district, ok := catalog.DistrictOf(area.Value)
		require.True(t, ok, "area %q has no district", area.Value)
		assert.Equal(t, area.District, district)
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.toml")
	data := `
[[districts]]
key = "north"
label = "North"

[[districts]]
key = "south"
label = "South"
disabled = true

[[areas]]
value = "harbor"
label = "Harbor"
district = "north"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, catalog.Districts, 2)
	assert.True(t, catalog.Districts[1].Disabled)

	district, ok := catalog.DistrictOf("harbor")
	assert.True(t, ok)
	assert.Equal(t, "north", district)

	_, ok = catalog.DistrictOf("nowhere")
	assert.False(t, ok)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Catalog {
		return &Catalog{
			Districts: []District{{Key: "north", Label: "North"}},
			Areas:     []Area{{Value: "harbor", Label: "Harbor", District: "north"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr error
	}{
		{"no districts", func(c *Catalog) { c.Districts = nil }, ErrNoDistricts},
		{"no areas", func(c *Catalog) { c.Areas = nil }, ErrNoAreas},
		{"duplicate district key", func(c *Catalog) {
			c.Districts = append(c.Districts, District{Key: "north", Label: "Again"})
		}, ErrDuplicateKey},
		{"duplicate area value", func(c *Catalog) {
			c.Areas = append(c.Areas, Area{Value: "harbor", Label: "Again", District: "north"})
		}, ErrDuplicateKey},
		{"unknown district reference", func(c *Catalog) {
			c.Areas[0].District = "west"
		}, ErrUnknownDistrict},
		{"missing district label", func(c *Catalog) {
			c.Districts[0].Label = ""
		}, ErrMissingLabel},
		{"missing area value", func(c *Catalog) {
			c.Areas[0].Value = ""
		}, ErrMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := valid()
			tt.mutate(catalog)

			assert.ErrorIs(t, catalog.Validate(), tt.wantErr)
		})
	}
}

func TestGetXDGConfigHomeWithEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/custom/config", GetXDGConfigHomeWithEnv("/custom/config"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config"), GetXDGConfigHomeWithEnv(""))
}
