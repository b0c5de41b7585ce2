// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the gallery slideshow:
// the painting record held by the collection and the configuration for each
// collaborator (catalog client, acquisition, slideshow, export, logging).
package types

import (
	"errors"
	"strings"
)

// Provenance tags carried in Painting.Source.
const (
	// SourceSeed marks paintings that ship with the binary or a seed file.
	SourceSeed = "seed"

	// SourceMet marks paintings acquired from the Met collection API.
	SourceMet = "The Metropolitan Museum of Art"
)

// UnknownYear is used when the catalog record carries no object date.
const UnknownYear = "date unknown"

// Painting is one entry of the slideshow collection. Paintings are never
// mutated after creation; the collection store hands out copies.
type Painting struct {
	// ImageURL is the address of a displayable image resource. The JSON
	// name matches the my-art-collection.json format.
	ImageURL string `json:"imageUrl" yaml:"image_url"`

	// Title is the painting title; never blank.
	Title string `json:"title" yaml:"title"`

	// Artist is the artist display name.
	Artist string `json:"artist" yaml:"artist"`

	// Year is free text: a single year, a range, or UnknownYear.
	Year string `json:"year" yaml:"year"`

	// Style is the coarse classification label (e.g. "oil painting").
	Style string `json:"style" yaml:"style"`

	// Description is synthesized prose about the painting.
	Description string `json:"description" yaml:"description"`

	// Source identifies provenance (SourceSeed, SourceMet).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Caption returns the one-line "Title - Artist (Year)" caption.
func (p Painting) Caption() string {
	return p.Title + " - " + p.Artist + " (" + p.Year + ")"
}

// Validate checks the required fields of a painting.
func (p Painting) Validate() error {
	var errs []error
	if strings.TrimSpace(p.ImageURL) == "" {
		errs = append(errs, errors.New("image_url is required"))
	}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(p.Artist) == "" {
		errs = append(errs, errors.New("artist is required"))
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	return errors.Join(errs...)
}
