// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teamalloc

import (
	"math"
	"sort"
)

// sizeClassWeight makes size classes totally ordered so that equal-rate
// comparisons stay deterministic. Unknown classes weigh zero, same as
// "small".
func sizeClassWeight(class string) int {
	switch class {
	case "large":
		return 2
	case "medium":
		return 1
	default:
		return 0
	}
}

// RankRestaurants returns a new sequence containing every input
// restaurant exactly once, ordered by rate descending. Equal rates are
// broken per tieBreak: OriginalOrder keeps the input order, PreferLarger
// orders by size class descending and falls back to input order. The
// input is not modified; the returned restaurants have full availability
// (CapRest reset to Cap, no assignments).
func RankRestaurants(restaurants []Restaurant, tieBreak TieBreak) ([]Restaurant, error) {
	for i := range restaurants {
		r := &restaurants[i]
		if math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) || r.Rate < 0 {
			return nil, &InvalidRateError{ID: r.ID, Rate: r.Rate}
		}
	}

	ranked := make([]Restaurant, len(restaurants))
	copy(ranked, restaurants)
	for i := range ranked {
		ranked[i].CapRest = ranked[i].Cap
		ranked[i].Assigned = nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rate != ranked[j].Rate {
			return ranked[i].Rate > ranked[j].Rate
		}
		if tieBreak == PreferLarger {
			return sizeClassWeight(ranked[i].SizeClass) > sizeClassWeight(ranked[j].SizeClass)
		}
		return false
	})

	return ranked, nil
}
