// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/gallery/internal/catalog"
)

// Institution names the museum holding every acquired painting.
const Institution = "The Metropolitan Museum of Art, New York"

// maxTags bounds how many subject tags appear in a description.
const maxTags = 2

// Describe composes a description from the record. The opening and closing
// clauses are always present; date, medium, and subject clauses appear only
// when their field is set, in that order.
func Describe(obj *catalog.Object) string {
	if obj == nil {
		obj = &catalog.Object{}
	}

	var b strings.Builder
	label := Classify(obj)
	fmt.Fprintf(&b, "\"%s\" is %s %s by %s.", obj.Title, article(label), label, obj.ArtistDisplayName)

	if obj.ObjectDate != "" {
		fmt.Fprintf(&b, " Created %s.", obj.ObjectDate)
	}

	if obj.Medium != "" {
		fmt.Fprintf(&b, " Rendered in %s.", cases.Lower(language.Und).String(obj.Medium))
	}

	if terms := tagTerms(obj.Tags, maxTags); len(terms) > 0 {
		fmt.Fprintf(&b, " Its subjects include %s.", strings.Join(terms, ", "))
	}

	fmt.Fprintf(&b, " It is held by %s.", Institution)
	return b.String()
}

func tagTerms(tags []catalog.Tag, n int) []string {
	if len(tags) > n {
		tags = tags[:n]
	}
	terms := make([]string, 0, len(tags))
	for _, t := range tags {
		terms = append(terms, t.Term)
	}
	return terms
}

// article picks the indefinite article for a label.
func article(label string) string {
	if label != "" && strings.ContainsRune("AEIOUaeiou", rune(label[0])) {
		return "an"
	}
	return "a"
}
