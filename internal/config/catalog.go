// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Catalog validation errors.
var (
	ErrNoDistricts     = errors.New("catalog has no districts")
	ErrNoAreas         = errors.New("catalog has no areas")
	ErrDuplicateKey    = errors.New("duplicate key in catalog")
	ErrUnknownDistrict = errors.New("area references unknown district")
	ErrMissingLabel    = errors.New("catalog entry has no label")
	ErrMissingValue    = errors.New("catalog entry has no key")
)

//go:embed catalog.toml
var defaultCatalog []byte

// District is one upstream entry of the cascading demo: a group key with
// display metadata.
type District struct {
	Key      string `toml:"key"`
	Label    string `toml:"label"`
	Disabled bool   `toml:"disabled"`
}

// Area is one downstream entry. District names the upstream key the area
// belongs to.
type Area struct {
	Value    string `toml:"value"`
	Label    string `toml:"label"`
	District string `toml:"district"`
	Disabled bool   `toml:"disabled"`
}

// Catalog is the demo data set: districts and the areas they own.
type Catalog struct {
	Districts []District `toml:"districts"`
	Areas     []Area     `toml:"areas"`
}

// DefaultCatalog returns the embedded demo catalog.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalog)
}

// LoadCatalog reads and validates a catalog from path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return parseCatalog(data)
}

// LoadCatalogOrDefault loads the catalog at path when given, otherwise the
// user catalog if one exists, otherwise the embedded default.
func LoadCatalogOrDefault(path string) (*Catalog, error) {
	if path != "" {
		return LoadCatalog(path)
	}

	userPath := UserCatalogPath()
	if _, err := os.Stat(userPath); err == nil {
		return LoadCatalog(userPath)
	}

	return DefaultCatalog()
}

func parseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog

	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return &catalog, nil
}

// Validate checks referential integrity of the catalog: unique keys, labels
// present, every area owned by a declared district.
func (c *Catalog) Validate() error {
	if len(c.Districts) == 0 {
		return ErrNoDistricts
	}

	if len(c.Areas) == 0 {
		return ErrNoAreas
	}

	districts := make(map[string]bool, len(c.Districts))

	for _, district := range c.Districts {
		if district.Key == "" {
			return fmt.Errorf("%w: district %q", ErrMissingValue, district.Label)
		}

		if district.Label == "" {
			return fmt.Errorf("%w: district %q", ErrMissingLabel, district.Key)
		}

		if districts[district.Key] {
			return fmt.Errorf("%w: district %q", ErrDuplicateKey, district.Key)
		}

		districts[district.Key] = true
	}

	areas := make(map[string]bool, len(c.Areas))

	for _, area := range c.Areas {
		if area.Value == "" {
			return fmt.Errorf("%w: area %q", ErrMissingValue, area.Label)
		}

		if area.Label == "" {
			return fmt.Errorf("%w: area %q", ErrMissingLabel, area.Value)
		}

		if areas[area.Value] {
			return fmt.Errorf("%w: area %q", ErrDuplicateKey, area.Value)
		}

		if !districts[area.District] {
			return fmt.Errorf("%w: area %q -> %q", ErrUnknownDistrict, area.Value, area.District)
		}

		areas[area.Value] = true
	}

	return nil
}

// DistrictOf returns the owning district key for an area value.
func (c *Catalog) DistrictOf(value string) (string, bool) {
	for _, area := range c.Areas {
		if area.Value == value {
			return area.District, true
		}
	}

	return "", false
}
