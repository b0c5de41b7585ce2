// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import "github.com/pdiddy/gallery/pkg/types"

// Reason explains why a sampled object was not added to the collection.
type Reason string

const (
	// ReasonIncomplete marks records missing an image, title, or artist.
	ReasonIncomplete Reason = "incomplete"

	// ReasonDuplicate marks records whose title and artist are already held.
	ReasonDuplicate Reason = "duplicate"

	// ReasonFetchFailed marks identifiers whose fetch failed after retries.
	ReasonFetchFailed Reason = "fetch_failed"
)

// Rejection records one sampled object that was not accepted.
type Rejection struct {
	ObjectID int
	Reason   Reason
}

// Result holds the outcome of one acquisition cycle.
type Result struct {
	// CycleID identifies the cycle in logs.
	CycleID string

	// Sampled is the number of identifiers selected for fetching.
	Sampled int

	// Accepted lists the paintings appended to the store, in order.
	Accepted []types.Painting

	// Rejections lists every sampled object that was not accepted.
	Rejections []Rejection

	// Errors holds per-object fetch failures.
	Errors []error
}

// Rejected returns the number of rejected objects.
func (r Result) Rejected() int {
	return len(r.Rejections)
}

// Count returns the number of rejections with the given reason.
func (r Result) Count(reason Reason) int {
	n := 0
	for _, rej := range r.Rejections {
		if rej.Reason == reason {
			n++
		}
	}
	return n
}

// Total returns the number of objects processed.
func (r Result) Total() int {
	return len(r.Accepted) + len(r.Rejections)
}
