// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

// OwnerFunc maps a downstream value to the upstream key it belongs to.
// Returning ok=false means the value belongs to no upstream key.
type OwnerFunc func(value string) (key string, ok bool)

// PruneCascade removes downstream selections whose owning upstream key is
// no longer selected. Values with no known owner are pruned as well. The
// relative order of surviving values is preserved and the input slice is
// returned untouched when nothing changes, so re-running with unchanged
// inputs is idempotent and allocation-free.
//
// Callers must run this synchronously inside the same update that changed
// the upstream selection, never deferred.
func PruneCascade(downstream []string, upstream []string, ownerOf OwnerFunc) []string {
	if len(downstream) == 0 {
		return downstream
	}

	selected := make(map[string]struct{}, len(upstream))

	for _, key := range upstream {
		selected[key] = struct{}{}
	}

	keep := func(value string) bool {
		key, ok := ownerOf(value)
		if !ok {
			return false
		}

		_, ok = selected[key]

		return ok
	}

	changed := false

	for _, value := range downstream {
		if !keep(value) {
			changed = true

			break
		}
	}

	if !changed {
		return downstream
	}

	pruned := make([]string, 0, len(downstream))

	for _, value := range downstream {
		if keep(value) {
			pruned = append(pruned, value)
		}
	}

	return pruned
}
