package cmd

import (
	"fmt"

	"github.com/nikogura/distro-quiz/pkg/config"
	"github.com/nikogura/distro-quiz/pkg/recommend"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var questionsJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions and their options",
	Long: `Lists every factor with its options. Default options are marked with '*'.
Use the factor and option ids with 'distro-quiz recommend --answer factor=option'.`,
	RunE: runQuestions,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(questionsCmd)
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Print JSON instead of text")
}

func runQuestions(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var engine *recommend.Engine
	cfg, engine, err = setup()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if questionsJSON {
		err = writeJSON(out, engine.Questions)
		return err
	}

	lang := labelLanguage(engine.Questions, cfg.Language)
	for _, q := range engine.Questions.Questions {
		_, err = fmt.Fprintf(out, "%s (%s): %s\n", factorName(q.ID, lang), q.ID, q.Title(lang))
		if err != nil {
			return err
		}

		def := q.DefaultOption()
		for _, o := range q.Options {
			marker := " "
			if o.ID == def {
				marker = "*"
			}
			_, err = fmt.Fprintf(out, "  %s %-16s %s\n", marker, o.ID, o.Label(lang))
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintln(out)
		if err != nil {
			return err
		}
	}

	return err
}
