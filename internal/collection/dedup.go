// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collection

import "github.com/pdiddy/gallery/pkg/types"

// IsDuplicate reports whether existing holds a painting with the same title
// and artist as candidate. Comparison is exact: no trimming, case folding,
// or Unicode normalization, so near-duplicates are not caught.
func IsDuplicate(candidate types.Painting, existing []types.Painting) bool {
	for _, p := range existing {
		if p.Title == candidate.Title && p.Artist == candidate.Artist {
			return true
		}
	}
	return false
}
