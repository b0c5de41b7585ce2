// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package style derives presentation text from raw catalog records: a coarse
// style label and a synthesized description. Both functions are pure and
// total over any record shape.
package style

import (
	"strings"

	"github.com/pdiddy/gallery/internal/catalog"
)

// Style labels produced by Classify.
const (
	LabelImpressionistOil     = "Impressionist oil painting"
	LabelPostImpressionistOil = "Post-Impressionist oil painting"
	LabelOil                  = "oil painting"
	LabelWatercolor           = "watercolor painting"
	LabelTempera              = "tempera painting"
	LabelPainting             = "painting"
)

// Labels returns every label Classify can produce.
func Labels() []string {
	return []string{
		LabelImpressionistOil,
		LabelPostImpressionistOil,
		LabelOil,
		LabelWatercolor,
		LabelTempera,
		LabelPainting,
	}
}

// Classify maps a record's medium and begin date to a style label. Medium
// matching is a case-sensitive substring test; the first matching rule
// wins, so a begin date of exactly 1890 is Impressionist.
func Classify(obj *catalog.Object) string {
	if obj == nil {
		return LabelPainting
	}
	medium := obj.Medium

	switch {
	case strings.Contains(medium, "Oil"):
		switch {
		case beganWithin(obj, 1870, 1890):
			return LabelImpressionistOil
		case beganWithin(obj, 1890, 1910):
			return LabelPostImpressionistOil
		}
		return LabelOil
	case strings.Contains(medium, "Watercolor"):
		return LabelWatercolor
	case strings.Contains(medium, "Tempera"):
		return LabelTempera
	}
	return LabelPainting
}

// beganWithin reports whether the begin date is present and in [from, to].
func beganWithin(obj *catalog.Object, from, to int) bool {
	if obj.ObjectBeginDate == nil {
		return false
	}
	y := *obj.ObjectBeginDate
	return y >= from && y <= to
}
