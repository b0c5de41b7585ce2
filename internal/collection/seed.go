// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gallery/pkg/types"
)

// Seed returns the built-in paintings shown before any acquisition.
func Seed() []types.Painting {
	return []types.Painting{
		{
			ImageURL:    "images/starry-night.png",
			Title:       "The Starry Night",
			Artist:      "Vincent van Gogh",
			Year:        "1889",
			Style:       "Post-Impressionism",
			Description: "A village beneath an exaggerated, intensely expressive night sky.",
			Source:      types.SourceSeed,
		},
		{
			ImageURL:    "images/washington.jpg",
			Title:       "Washington Crossing the Delaware",
			Artist:      "Emanuel Leutze",
			Year:        "1851",
			Style:       "History painting",
			Description: "A staged crossing that still provokes debate about political ideals.",
			Source:      types.SourceSeed,
		},
		{
			ImageURL:    "images/the-scream.jpg",
			Title:       "The Scream",
			Artist:      "Edvard Munch",
			Year:        "1893",
			Style:       "Expressionism",
			Description: "A figure on a bridge caught in a moment of anguish; a landmark of Expressionist painting.",
			Source:      types.SourceSeed,
		},
	}
}

// LoadSeedFile reads a list of paintings from a YAML or JSON file, chosen by
// extension (.json is JSON, anything else YAML). Entries without a source
// are tagged as seed. Every entry must pass Painting.Validate.
func LoadSeedFile(path string) ([]types.Painting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var paintings []types.Painting
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &paintings)
	} else {
		err = yaml.Unmarshal(data, &paintings)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	for i := range paintings {
		if err := paintings[i].Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d in %s: %w", i+1, path, err)
		}
		if paintings[i].Source == "" {
			paintings[i].Source = types.SourceSeed
		}
	}
	return paintings, nil
}
