package assets

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ManifestName is the optional override file inside the gif folder.
const ManifestName = "reactions.yaml"

// Catalog names the reaction files for each moment of a run.
type Catalog struct {
	Normal   []string          `yaml:"normal"`
	GameOver []string          `yaml:"game_over"`
	Rank     map[string]string `yaml:"rank"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Normal: []string{
			"Eevee dancing.gif",
			"Umbreon dancing.gif",
			"Sylveon dancing.gif",
			"Glaceon dancing.gif",
			"Groovy Espeon.gif",
			"Jolteon dancing.gif",
		},
		GameOver: []string{
			"Espeon amused.gif",
			"Sylveon sad.gif",
			"Flareon firebreath.gif",
		},
		Rank: map[string]string{
			"C": "Rank C.gif",
			"B": "Rank B.gif",
			"A": "Rank A.gif",
			"S": "Rank S.gif",
		},
	}
}

// LoadCatalog reads ManifestName from fsys and lays it over the
// defaults. A missing manifest yields the defaults unchanged.
func LoadCatalog(fsys fs.FS) (Catalog, error) {
	catalog := DefaultCatalog()
	data, err := fs.ReadFile(fsys, ManifestName)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog, nil
	}
	if err != nil {
		return catalog, fmt.Errorf("read %s: %w", ManifestName, err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return catalog, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	if len(override.Normal) > 0 {
		catalog.Normal = override.Normal
	}
	if len(override.GameOver) > 0 {
		catalog.GameOver = override.GameOver
	}
	for letter, name := range override.Rank {
		catalog.Rank[letter] = name
	}
	return catalog, nil
}
