// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collection

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gallery/pkg/types"
)

func painting(title, artist string) types.Painting {
	return types.Painting{
		ImageURL:    "https://example.org/" + title + ".jpg",
		Title:       title,
		Artist:      artist,
		Year:        "1900",
		Style:       "painting",
		Description: title + " by " + artist,
	}
}

func TestIsDuplicate(t *testing.T) {
	existing := []types.Painting{
		painting("The Harvesters", "Pieter Bruegel the Elder"),
		painting("Madame X", "John Singer Sargent"),
	}

	tests := []struct {
		name      string
		candidate types.Painting
		want      bool
	}{
		{"same title and artist", painting("Madame X", "John Singer Sargent"), true},
		{"same title other artist", painting("Madame X", "Someone Else"), false},
		{"same artist other title", painting("The Harvesters", "John Singer Sargent"), false},
		{"case differs", painting("madame x", "John Singer Sargent"), false},
		{"trailing whitespace differs", painting("Madame X ", "John Singer Sargent"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicate(tt.candidate, existing))
		})
	}
}

func TestIsDuplicateIgnoresOtherFields(t *testing.T) {
	a := painting("Madame X", "John Singer Sargent")
	b := a
	b.ImageURL = "other"
	b.Year = "1884"
	b.Source = types.SourceMet
	assert.True(t, IsDuplicate(b, []types.Painting{a}))
}

func TestIsDuplicateEmptyCollection(t *testing.T) {
	assert.False(t, IsDuplicate(painting("a", "b"), nil))
}

func TestStoreAppendPreservesOrder(t *testing.T) {
	s := NewStore(painting("a", "x"))
	s.Append([]types.Painting{painting("b", "x"), painting("c", "x")})
	s.Append(nil)

	got := s.Snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Title, got[1].Title, got[2].Title})
	assert.Equal(t, 3, s.Len())
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewStore(painting("a", "x"))
	snap := s.Snapshot()
	snap[0].Title = "mutated"
	assert.Equal(t, "a", s.Snapshot()[0].Title)
}

func TestStoreNewStoreCopiesSeed(t *testing.T) {
	seed := []types.Painting{painting("a", "x")}
	s := NewStore(seed...)
	seed[0].Title = "mutated"
	assert.Equal(t, "a", s.Snapshot()[0].Title)
}

func TestStoreRandom(t *testing.T) {
	empty := NewStore()
	_, ok := empty.Random(nil)
	assert.False(t, ok)

	s := NewStore(painting("a", "x"), painting("b", "x"), painting("c", "x"))
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		p, ok := s.Random(r)
		require.True(t, ok)
		seen[p.Title] = true
	}
	assert.Len(t, seen, 3)

	_, ok = s.Random(nil)
	assert.True(t, ok)
}

func TestStoreReadersSeeWholeBatches(t *testing.T) {
	s := NewStore()
	const batch = 5

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			b := make([]types.Painting, batch)
			for j := range b {
				b[j] = painting("t", "a")
			}
			s.Append(b)
		}
	}()

	for i := 0; i < 1000; i++ {
		assert.Zero(t, s.Len()%batch)
	}
	wg.Wait()
	assert.Equal(t, 100*batch, s.Len())
}

func TestSeed(t *testing.T) {
	seed := Seed()
	require.Len(t, seed, 3)
	for i, p := range seed {
		assert.NoError(t, p.Validate())
		assert.Equal(t, types.SourceSeed, p.Source)
		assert.False(t, IsDuplicate(p, seed[:i]))
	}
}

func TestLoadSeedFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `- image_url: https://example.org/a.jpg
  title: Irises
  artist: Vincent van Gogh
  year: "1890"
  style: oil painting
  description: Irises in a garden.
- image_url: https://example.org/b.jpg
  title: The Card Players
  artist: Paul Cézanne
  year: 1890-92
  style: oil painting
  description: Card players.
  source: loan
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Irises", got[0].Title)
	assert.Equal(t, types.SourceSeed, got[0].Source)
	assert.Equal(t, "loan", got[1].Source)
	assert.Equal(t, "1890-92", got[1].Year)
}

func TestLoadSeedFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `[{"imageUrl":"u","title":"T","artist":"A","year":"1","style":"s","description":"d"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "T", got[0].Title)
	assert.Equal(t, "u", got[0].ImageURL)
}

func TestLoadSeedFileRejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: \"  \"\n  artist: A\n"), 0o644))

	_, err := LoadSeedFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "image_url is required")
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
