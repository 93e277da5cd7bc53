package quiz

import (
	_ "embed"

	"github.com/nikogura/distro-quiz/pkg/source"
	"github.com/nikogura/distro-quiz/pkg/validation"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/questions.yaml
var embeddedQuestions []byte

// LoadDefault parses the question set compiled into the binary.
func LoadDefault() (set QuestionSet, err error) {
	set, err = Parse(embeddedQuestions)
	if err != nil {
		err = errors.Wrap(err, "failed to load built-in questions")
		return set, err
	}
	return set, err
}

// Load reads a question set from a file path or URL.
func Load(input string) (set QuestionSet, err error) {
	var data []byte
	data, err = source.Fetch(input)
	if err != nil {
		err = errors.Wrap(err, "failed to read questions")
		return set, err
	}

	set, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to load questions: %s", input)
		return set, err
	}

	return set, err
}

// Parse decodes YAML question data and validates it.
func Parse(data []byte) (set QuestionSet, err error) {
	err = yaml.Unmarshal(data, &set)
	if err != nil {
		err = errors.Wrap(err, "failed to parse questions YAML")
		return set, err
	}

	err = set.Validate()
	if err != nil {
		err = errors.Wrap(err, "questions validation failed")
		return set, err
	}

	return set, err
}

// Validate checks that the question set is well-formed.
func (s *QuestionSet) Validate() (err error) {
	err = validation.Struct(s)
	if err != nil {
		return err
	}

	questionIDs := make(map[string]bool, len(s.Questions))
	// weights are keyed by option id alone, so ids must be unique across questions
	optionOwners := make(map[string]string)

	for i, q := range s.Questions {
		if questionIDs[q.ID] {
			err = errors.Errorf("question at index %d has duplicate ID %s", i, q.ID)
			return err
		}
		questionIDs[q.ID] = true

		for _, o := range q.Options {
			if owner, exists := optionOwners[o.ID]; exists {
				err = errors.Errorf("option %s of question %s already belongs to question %s", o.ID, q.ID, owner)
				return err
			}
			optionOwners[o.ID] = q.ID
		}

		if q.Default != "" && !q.HasOption(q.Default) {
			err = errors.Errorf("question %s default %s is not one of its options", q.ID, q.Default)
			return err
		}
	}

	return err
}
