// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package display renders paintings, acquisition progress, and user notices.
package display

import "github.com/pdiddy/gallery/pkg/types"

// Severity classifies a notice.
type Severity int

const (
	Info Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "info"
}

// Display is the surface the slideshow and the acquisition pipeline talk to.
type Display interface {
	Render(p types.Painting)
	ReportProgress(current, total int)
	Notify(msg string, sev Severity)
}
