package spells

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

//go:embed data/spells.yaml
var spellsYAML []byte

//go:embed data/learning.yaml
var learningYAML []byte

type catalogDocument struct {
	Spells []*Definition `yaml:"spells"`
}

// LoadCatalog builds a Registry from the embedded catalog files
func LoadCatalog() (*Registry, error) {
	return ParseCatalog(spellsYAML, learningYAML)
}

// ParseCatalog builds a Registry from YAML documents
func ParseCatalog(spellsDoc, learningDoc []byte) (*Registry, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(spellsDoc, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse spell catalog")
	}

	learning := LearningTable{}
	if err := yaml.Unmarshal(learningDoc, &learning); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse learning table")
	}

	return NewRegistry(doc.Spells, learning)
}
