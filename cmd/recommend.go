package cmd

import (
	"github.com/nikogura/distro-quiz/pkg/config"
	"github.com/nikogura/distro-quiz/pkg/logging"
	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/nikogura/distro-quiz/pkg/recommend"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var recommendAnswers []string

//nolint:gochecknoglobals // Cobra boilerplate
var recommendTop int

//nolint:gochecknoglobals // Cobra boilerplate
var recommendJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var recommendExplain bool

//nolint:gochecknoglobals // Cobra boilerplate
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend distributions from answers given as flags",
	Long: `Scores every distribution against the given answers and prints the best
matches with the desktop edition picked for each. Unanswered questions use their
default option. Run 'distro-quiz questions' to see every factor and option.

Examples:
  # Gamer on a Steam Deck
  distro-quiz recommend -a use_case=gaming -a device=handheld

  # Show the five best matches with a full score breakdown
  distro-quiz recommend -a gpu=nvidia -a updates=rolling --top 5 --explain

  # Machine-readable output
  distro-quiz recommend -a philosophy=foss --json`,
	RunE: runRecommend,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringArrayVarP(&recommendAnswers, "answer", "a", nil, "Answer as factor=option (repeatable)")
	recommendCmd.Flags().IntVar(&recommendTop, "top", 0, "Number of distributions to show (default from config)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print JSON instead of text")
	recommendCmd.Flags().BoolVar(&recommendExplain, "explain", false, "Show how each score was computed")
}

func runRecommend(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var engine *recommend.Engine
	cfg, engine, err = setup()
	if err != nil {
		return err
	}

	var answers quiz.Answers
	answers, err = engine.Questions.ParseAnswers(recommendAnswers)
	if err != nil {
		err = errors.Wrap(err, "invalid answers")
		return err
	}

	topN := cfg.TopN
	if recommendTop > 0 {
		topN = recommendTop
	}

	recs := engine.Recommend(answers, topN)
	lang := labelLanguage(engine.Questions, cfg.Language)

	logging.Debug().Int("top", topN).Int("results", len(recs)).Str("language", lang).Msg("Ranked catalog")

	if recommendJSON {
		err = writeJSON(cmd.OutOrStdout(), recommendationOutput{
			Language:        lang,
			Answers:         answers,
			Recommendations: recs,
		})
		return err
	}

	err = printRecommendations(cmd.OutOrStdout(), engine.Questions, recs, lang, recommendExplain)
	return err
}
