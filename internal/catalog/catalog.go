// Package catalog exposes the static, read-only dataset registry and demo
// use cases. Content is hand-authored; nothing here mutates at runtime.
package catalog

import (
	"sort"

	"github.com/liliang-cn/datagenie/internal/domain"
)

// All returns every dataset in catalog order
func All() []domain.Dataset {
	out := make([]domain.Dataset, len(registry))
	copy(out, registry)
	return out
}

// ByID looks up a dataset by identifier. Returns nil when the id is unknown.
func ByID(id string) *domain.Dataset {
	for i := range registry {
		if registry[i].ID == id {
			ds := registry[i]
			return &ds
		}
	}
	return nil
}

// Search returns datasets matching any of the given tags, ordered by match
// count descending. Equal counts keep catalog order.
func Search(tags []string) []domain.Dataset {
	matchCount := func(ds domain.Dataset) int {
		n := 0
		for _, tag := range tags {
			for _, t := range ds.Tags {
				if t == tag {
					n++
					break
				}
			}
		}
		return n
	}

	var matched []domain.Dataset
	for _, ds := range registry {
		if matchCount(ds) > 0 {
			matched = append(matched, ds)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matchCount(matched[i]) > matchCount(matched[j])
	})

	return matched
}

// Size returns the number of datasets in the catalog
func Size() int {
	return len(registry)
}
