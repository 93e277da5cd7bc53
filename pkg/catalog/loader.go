package catalog

import (
	_ "embed"
	"sort"

	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/nikogura/distro-quiz/pkg/source"
	"github.com/nikogura/distro-quiz/pkg/validation"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/distros.yaml
var embeddedCatalog []byte

// LoadDefault parses the catalog compiled into the binary.
func LoadDefault(questions quiz.QuestionSet) (cat Catalog, err error) {
	cat, err = Parse(embeddedCatalog, questions)
	if err != nil {
		err = errors.Wrap(err, "failed to load built-in catalog")
		return cat, err
	}
	return cat, err
}

// Load reads a catalog from a file path or URL and validates it against questions.
func Load(input string, questions quiz.QuestionSet) (cat Catalog, err error) {
	var data []byte
	data, err = source.Fetch(input)
	if err != nil {
		err = errors.Wrap(err, "failed to read catalog")
		return cat, err
	}

	cat, err = Parse(data, questions)
	if err != nil {
		err = errors.Wrapf(err, "failed to load catalog: %s", input)
		return cat, err
	}

	return cat, err
}

// Parse decodes YAML catalog data and validates it.
func Parse(data []byte, questions quiz.QuestionSet) (cat Catalog, err error) {
	err = yaml.Unmarshal(data, &cat)
	if err != nil {
		err = errors.Wrap(err, "failed to parse catalog YAML")
		return cat, err
	}

	err = cat.Validate(questions)
	if err != nil {
		err = errors.Wrap(err, "catalog validation failed")
		return cat, err
	}

	return cat, err
}

// Validate checks that the catalog is well-formed and that every weight key is
// an option of the question set.
func (c *Catalog) Validate(questions quiz.QuestionSet) (err error) {
	err = validation.Struct(c)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Candidates))
	for i, cand := range c.Candidates {
		if seen[cand.ID] {
			err = errors.Errorf("candidate at index %d has duplicate ID %s", i, cand.ID)
			return err
		}
		seen[cand.ID] = true

		err = cand.validateVariants()
		if err != nil {
			return err
		}

		err = cand.validateWeights(questions)
		if err != nil {
			return err
		}
	}

	return err
}

func (c Candidate) validateVariants() (err error) {
	if len(c.Variants) == 0 {
		err = errors.Errorf("candidate %s has no variants", c.ID)
		return err
	}

	seen := make(map[string]bool, len(c.Variants))
	for i, v := range c.Variants {
		if seen[v.ID] {
			err = errors.Errorf("candidate %s variant at index %d has duplicate ID %s", c.ID, i, v.ID)
			return err
		}
		seen[v.ID] = true
	}

	return err
}

func (c Candidate) validateWeights(questions quiz.QuestionSet) (err error) {
	keys := make([]string, 0, len(c.Weights))
	for key := range c.Weights {
		keys = append(keys, key)
	}
	// deterministic error messages
	sort.Strings(keys)

	for _, key := range keys {
		if !questions.HasOption(key) {
			err = errors.Errorf("candidate %s has weight for unknown option %s", c.ID, key)
			return err
		}
	}

	return err
}
