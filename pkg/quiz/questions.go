package quiz

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Question returns the question for a factor.
func (s *QuestionSet) Question(id string) (question Question, ok bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			question = q
			ok = true
			return question, ok
		}
	}
	return question, ok
}

// FactorOf returns the factor an option answers.
func (s *QuestionSet) FactorOf(optionID string) (factor string, ok bool) {
	for _, q := range s.Questions {
		if q.HasOption(optionID) {
			factor = q.ID
			ok = true
			return factor, ok
		}
	}
	return factor, ok
}

// HasOption reports whether any question offers optionID.
func (s *QuestionSet) HasOption(optionID string) (found bool) {
	_, found = s.FactorOf(optionID)
	return found
}

// OptionIDs lists every option id in question order.
func (s *QuestionSet) OptionIDs() (ids []string) {
	ids = []string{}
	for _, q := range s.Questions {
		for _, o := range q.Options {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Defaults returns a fresh Answers value with every factor at its default option.
func (s *QuestionSet) Defaults() (answers Answers) {
	answers = make(Answers, len(s.Questions))
	for _, q := range s.Questions {
		answers[q.ID] = q.DefaultOption()
	}
	return answers
}

// Reset discards prior answers. It is equivalent to Defaults.
func (s *QuestionSet) Reset() (answers Answers) {
	answers = s.Defaults()
	return answers
}

// Answer returns a copy of answers with factor set to option.
func (s *QuestionSet) Answer(answers Answers, factor, option string) (updated Answers, err error) {
	q, ok := s.Question(factor)
	if !ok {
		err = errors.Errorf("unknown question: %s", factor)
		return answers, err
	}

	if !q.HasOption(option) {
		err = errors.Errorf("invalid option %s for question %s: must be one of [%s]",
			option, factor, strings.Join(q.OptionIDs(), ", "))
		return answers, err
	}

	updated = answers.Clone()
	updated[factor] = option
	return updated, err
}

// ParseAnswers applies "factor=option" pairs on top of the defaults.
func (s *QuestionSet) ParseAnswers(pairs []string) (answers Answers, err error) {
	answers = s.Defaults()

	for _, pair := range pairs {
		factor, option, found := strings.Cut(pair, "=")
		if !found {
			err = errors.Errorf("invalid answer %q: expected factor=option", pair)
			return answers, err
		}

		answers, err = s.Answer(answers, strings.TrimSpace(factor), strings.TrimSpace(option))
		if err != nil {
			return answers, err
		}
	}

	return answers, err
}

// Languages lists the label languages present, default language first.
func (s *QuestionSet) Languages() (langs []string) {
	seen := map[string]bool{DefaultLanguage: true}
	for _, q := range s.Questions {
		for lang := range q.Titles {
			seen[lang] = true
		}
		for _, o := range q.Options {
			for lang := range o.Labels {
				seen[lang] = true
			}
		}
	}

	langs = make([]string, 0, len(seen))
	for lang := range seen {
		if lang != DefaultLanguage {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	langs = append([]string{DefaultLanguage}, langs...)

	return langs
}

// MatchLanguage picks the closest available label language for a BCP 47 tag.
func (s *QuestionSet) MatchLanguage(requested string) (lang string) {
	available := s.Languages()

	tags := make([]language.Tag, 0, len(available))
	for _, a := range available {
		tags = append(tags, language.Make(a))
	}

	matcher := language.NewMatcher(tags)
	_, index, _ := matcher.Match(language.Make(requested))
	lang = available[index]

	return lang
}

// DefaultOption returns the configured default, or the first option.
func (q Question) DefaultOption() (id string) {
	if q.Default != "" {
		id = q.Default
		return id
	}
	if len(q.Options) > 0 {
		id = q.Options[0].ID
	}
	return id
}

// HasOption reports whether optionID answers this question.
func (q Question) HasOption(optionID string) (found bool) {
	for _, o := range q.Options {
		if o.ID == optionID {
			found = true
			return found
		}
	}
	return found
}

// OptionIDs lists this question's option ids in order.
func (q Question) OptionIDs() (ids []string) {
	ids = make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		ids = append(ids, o.ID)
	}
	return ids
}

// Title returns the question text in lang, falling back to English, then the id.
func (q Question) Title(lang string) (title string) {
	title = localized(q.Titles, lang, q.ID)
	return title
}

// Label returns the option text in lang, falling back to English, then the id.
func (o Option) Label(lang string) (label string) {
	label = localized(o.Labels, lang, o.ID)
	return label
}

// Clone returns an independent copy.
func (a Answers) Clone() (c Answers) {
	c = make(Answers, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

func localized(texts map[string]string, lang, fallback string) (text string) {
	if t, ok := texts[lang]; ok && t != "" {
		text = t
		return text
	}
	if t, ok := texts[DefaultLanguage]; ok && t != "" {
		text = t
		return text
	}
	text = fallback
	return text
}
