// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func areaOwner(value string) (string, bool) {
	owners := map[string]string{
		"area-n1": "north",
		"area-n2": "north",
		"area-s1": "south",
	}

	key, ok := owners[value]

	return key, ok
}

func TestPruneCascadeRemovesOrphanedAreas(t *testing.T) {
	t.Parallel()

	downstream := []string{"area-n1", "area-s1", "area-n2"}

	pruned := PruneCascade(downstream, []string{"north"}, areaOwner)

	assert.Equal(t, []string{"area-n1", "area-n2"}, pruned)
}

func TestPruneCascadeIsIdempotent(t *testing.T) {
	t.Parallel()

	downstream := []string{"area-n1", "area-s1"}
	upstream := []string{"south"}

	once := PruneCascade(downstream, upstream, areaOwner)
	twice := PruneCascade(once, upstream, areaOwner)

	assert.Equal(t, []string{"area-s1"}, once)
	assert.Equal(t, once, twice)
}

func TestPruneCascadeNoChangeReturnsSameSlice(t *testing.T) {
	t.Parallel()

	downstream := []string{"area-n1", "area-n2"}

	pruned := PruneCascade(downstream, []string{"north", "south"}, areaOwner)

	// No observable mutation when nothing needs pruning.
	assert.Equal(t, &downstream[0], &pruned[0])
	assert.Len(t, pruned, 2)
}

func TestPruneCascadeUnknownOwnerIsPruned(t *testing.T) {
	t.Parallel()

	pruned := PruneCascade([]string{"area-n1", "mystery"}, []string{"north"}, areaOwner)

	assert.Equal(t, []string{"area-n1"}, pruned)
}

func TestPruneCascadeEmptyUpstreamClearsAll(t *testing.T) {
	t.Parallel()

	pruned := PruneCascade([]string{"area-n1", "area-s1"}, nil, areaOwner)

	assert.Empty(t, pruned)
}

func TestPruneCascadeEmptyDownstream(t *testing.T) {
	t.Parallel()

	assert.Empty(t, PruneCascade(nil, []string{"north"}, areaOwner))
}
