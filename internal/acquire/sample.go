// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import "math/rand/v2"

// Sample returns up to n identifiers chosen uniformly without replacement.
// It shuffles a copy of ids with a Fisher-Yates shuffle and truncates. A nil
// shuffle uses math/rand/v2's global source. ids is not modified.
func Sample(ids []int, n int, shuffle func(n int, swap func(i, j int))) []int {
	if n <= 0 || len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)

	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	if n < len(out) {
		out = out[:n]
	}
	return out
}
