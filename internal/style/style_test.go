// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gallery/internal/catalog"
)

func year(y int) *int { return &y }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		obj  *catalog.Object
		want string
	}{
		{"nil record", nil, LabelPainting},
		{"empty record", &catalog.Object{}, LabelPainting},
		{"oil impressionist low bound", &catalog.Object{Medium: "Oil on canvas", ObjectBeginDate: year(1870)}, LabelImpressionistOil},
		{"oil 1890 resolves to first rule", &catalog.Object{Medium: "Oil on canvas", ObjectBeginDate: year(1890)}, LabelImpressionistOil},
		{"oil post-impressionist", &catalog.Object{Medium: "Oil on canvas", ObjectBeginDate: year(1891)}, LabelPostImpressionistOil},
		{"oil post-impressionist high bound", &catalog.Object{Medium: "Oil on wood", ObjectBeginDate: year(1910)}, LabelPostImpressionistOil},
		{"oil outside ranges", &catalog.Object{Medium: "Oil on canvas", ObjectBeginDate: year(1650)}, LabelOil},
		{"oil without date", &catalog.Object{Medium: "Oil on canvas"}, LabelOil},
		{"oil zero date", &catalog.Object{Medium: "Oil on canvas", ObjectBeginDate: year(0)}, LabelOil},
		{"lowercase oil does not match", &catalog.Object{Medium: "oil on canvas", ObjectBeginDate: year(1880)}, LabelPainting},
		{"watercolor", &catalog.Object{Medium: "Watercolor on paper", ObjectBeginDate: year(1880)}, LabelWatercolor},
		{"tempera", &catalog.Object{Medium: "Tempera and gold on wood"}, LabelTempera},
		{"oil wins over tempera", &catalog.Object{Medium: "Tempera and Oil on wood"}, LabelOil},
		{"other medium", &catalog.Object{Medium: "Pastel on paper"}, LabelPainting},
		{"date only", &catalog.Object{ObjectBeginDate: year(1880)}, LabelPainting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.obj))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	media := []string{"", "Oil", "Watercolor", "Tempera", "Oil and Watercolor", "ink"}
	dates := []*int{nil, year(-500), year(1869), year(1875), year(1900), year(1950)}
	labels := Labels()
	for _, m := range media {
		for _, d := range dates {
			got := Classify(&catalog.Object{Medium: m, ObjectBeginDate: d})
			assert.Contains(t, labels, got)
		}
	}
	assert.Len(t, labels, 6)
}

func TestDescribeAllClauses(t *testing.T) {
	obj := &catalog.Object{
		Title:             "Wheat Field with Cypresses",
		ArtistDisplayName: "Vincent van Gogh",
		ObjectDate:        "1889",
		ObjectBeginDate:   year(1889),
		Medium:            "Oil on Canvas",
		Tags:              []catalog.Tag{{Term: "Landscapes"}, {Term: "Cypresses"}, {Term: "Wheat"}},
	}

	got := Describe(obj)
	want := `"Wheat Field with Cypresses" is an Impressionist oil painting by Vincent van Gogh.` +
		` Created 1889.` +
		` Rendered in oil on canvas.` +
		` Its subjects include Landscapes, Cypresses.` +
		` It is held by The Metropolitan Museum of Art, New York.`
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "Wheat.")
}

func TestDescribeOptionalClauses(t *testing.T) {
	base := catalog.Object{Title: "Study", ArtistDisplayName: "Anon"}
	opening := `"Study" is a painting by Anon.`
	closing := " It is held by " + Institution + "."

	tests := []struct {
		name   string
		mutate func(o *catalog.Object)
		want   []string
		absent []string
	}{
		{
			name:   "mandatory only",
			mutate: func(*catalog.Object) {},
			absent: []string{"Created", "Rendered in", "subjects"},
		},
		{
			name:   "date only",
			mutate: func(o *catalog.Object) { o.ObjectDate = "ca. 1650" },
			want:   []string{" Created ca. 1650."},
			absent: []string{"Rendered in", "subjects"},
		},
		{
			name:   "empty tag list",
			mutate: func(o *catalog.Object) { o.Tags = []catalog.Tag{} },
			absent: []string{"subjects"},
		},
		{
			name:   "single tag",
			mutate: func(o *catalog.Object) { o.Tags = []catalog.Tag{{Term: "Portraits"}} },
			want:   []string{" Its subjects include Portraits."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := base
			tt.mutate(&obj)
			got := Describe(&obj)

			assert.True(t, strings.HasPrefix(got, opening), got)
			assert.True(t, strings.HasSuffix(got, closing), got)
			for _, s := range tt.want {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestDescribeClauseOrder(t *testing.T) {
	got := Describe(&catalog.Object{
		Title:             "T",
		ArtistDisplayName: "A",
		ObjectDate:        "1900",
		Medium:            "Tempera",
		Tags:              []catalog.Tag{{Term: "x"}},
	})

	created := strings.Index(got, "Created")
	medium := strings.Index(got, "Rendered in tempera")
	tags := strings.Index(got, "subjects")
	held := strings.Index(got, "It is held by")
	require.True(t, created > 0 && medium > 0 && tags > 0 && held > 0, got)
	assert.Less(t, created, medium)
	assert.Less(t, medium, tags)
	assert.Less(t, tags, held)
}

func TestDescribeNilIsNonEmpty(t *testing.T) {
	got := Describe(nil)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, Institution)
}

func TestArticle(t *testing.T) {
	assert.Equal(t, "an", article(LabelOil))
	assert.Equal(t, "an", article(LabelImpressionistOil))
	assert.Equal(t, "a", article(LabelPostImpressionistOil))
	assert.Equal(t, "a", article(LabelWatercolor))
	assert.Equal(t, "a", article(""))
}
