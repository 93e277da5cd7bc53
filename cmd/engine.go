package cmd

import (
	"github.com/nikogura/distro-quiz/pkg/catalog"
	"github.com/nikogura/distro-quiz/pkg/config"
	"github.com/nikogura/distro-quiz/pkg/logging"
	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/nikogura/distro-quiz/pkg/recommend"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// setup loads configuration, configures logging and loads the quiz data.
func setup() (cfg config.Config, engine *recommend.Engine, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, engine, err
	}

	level := cfg.Log.Level
	if getVerbose() {
		level = "debug"
	}
	logging.Init(logging.Config{Level: level, Format: cfg.Log.Format})

	logConfigSources(getConfigFile())

	var questions quiz.QuestionSet
	questions, err = loadQuestions(firstNonEmpty(questionsSource, cfg.Questions))
	if err != nil {
		return cfg, engine, err
	}

	var cat catalog.Catalog
	cat, err = loadCatalog(firstNonEmpty(catalogSource, cfg.Catalog), questions)
	if err != nil {
		return cfg, engine, err
	}

	logging.Debug().
		Int("questions", len(questions.Questions)).
		Int("candidates", len(cat.Candidates)).
		Msg("Quiz data loaded")

	engine = recommend.NewEngine(questions, cat)
	return cfg, engine, err
}

// logConfigSources reports where the loaded config came from. It runs after
// logging.Init so the configured level applies.
func logConfigSources(configPath string) {
	path, found, _ := config.Resolve(configPath)
	if found {
		logging.Info().Str("path", path).Msg("Loaded config file")
	}
	for _, name := range config.Overrides() {
		logging.Info().Str("variable", name).Msg("Config overridden from environment")
	}
}

// labelLanguage picks the label language for the configured tag and warns
// when the question set has no labels in that language.
func labelLanguage(questions quiz.QuestionSet, requested string) (lang string) {
	lang = questions.MatchLanguage(requested)

	want, _ := language.Make(requested).Base()
	got, _ := language.Make(lang).Base()
	if want != got {
		logging.Warn().Str("requested", requested).Str("using", lang).Msg("No labels in requested language")
	}

	return lang
}

func loadQuestions(input string) (questions quiz.QuestionSet, err error) {
	if input == "" {
		logging.Debug().Msg("Using built-in questions")
		questions, err = quiz.LoadDefault()
		return questions, err
	}

	logging.Debug().Str("source", input).Msg("Loading questions")
	questions, err = quiz.Load(input)
	return questions, err
}

func loadCatalog(input string, questions quiz.QuestionSet) (cat catalog.Catalog, err error) {
	if input == "" {
		logging.Debug().Msg("Using built-in catalog")
		cat, err = catalog.LoadDefault(questions)
		return cat, err
	}

	logging.Debug().Str("source", input).Msg("Loading catalog")
	cat, err = catalog.Load(input, questions)
	return cat, err
}

func firstNonEmpty(values ...string) (result string) {
	for _, v := range values {
		if v != "" {
			result = v
			return result
		}
	}
	return result
}
