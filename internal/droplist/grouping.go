// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package droplist

// GroupBucket is one ordered group of the projected output: the resolved
// display metadata plus the member items in filtered order.
type GroupBucket struct {
	Key      string
	Label    string
	Disabled bool
	Items    []Item
}

// ItemDisabled returns the effective disabled state for a member item:
// a disabled group dominates the item's own flag.
func (b GroupBucket) ItemDisabled(item Item) bool {
	return b.Disabled || item.Disabled
}

// ProjectGroups partitions items into ordered group buckets. Items whose
// keyFn returns ok=false are dropped silently. Buckets for keys present in
// the group list come first, in group-list order; keys only derived from
// items follow in first-seen order. Buckets with zero items are omitted.
//
// Display metadata is resolved via the group list; a key with no matching
// group entry uses the key itself as its label and is never disabled by
// that lookup.
func ProjectGroups(items []Item, groups []Group, keyFn GroupKeyFunc) []GroupBucket {
	if keyFn == nil {
		return nil
	}

	members := make(map[string][]Item)
	extraKeys := make([]string, 0)
	known := make(map[string]bool, len(groups))

	for _, group := range groups {
		known[group.Key] = true
	}

	for _, item := range items {
		key, ok := keyFn(item)
		if !ok {
			continue
		}

		if _, seen := members[key]; !seen && !known[key] {
			extraKeys = append(extraKeys, key)
		}

		members[key] = append(members[key], item)
	}

	buckets := make([]GroupBucket, 0, len(members))

	for _, group := range groups {
		items, ok := members[group.Key]
		if !ok {
			continue
		}

		buckets = append(buckets, GroupBucket{
			Key:      group.Key,
			Label:    group.Label,
			Disabled: group.Disabled,
			Items:    items,
		})
	}

	for _, key := range extraKeys {
		buckets = append(buckets, GroupBucket{
			Key:   key,
			Label: key,
			Items: members[key],
		})
	}

	return buckets
}
