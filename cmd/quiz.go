package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikogura/distro-quiz/pkg/config"
	"github.com/nikogura/distro-quiz/pkg/logging"
	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/nikogura/distro-quiz/pkg/recommend"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the quiz interactively",
	Long: `Asks each question in turn and updates the recommendations after every answer.

At each prompt enter an option number or id. Press Enter to keep the current
answer, 'b' to go back, 'r' to reset all answers and 'q' to finish early.`,
	RunE: runQuiz,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var engine *recommend.Engine
	cfg, engine, err = setup()
	if err != nil {
		return err
	}

	lang := labelLanguage(engine.Questions, cfg.Language)
	s := newSession(engine, cmd.InOrStdin(), cmd.OutOrStdout(), lang, cfg.TopN)

	var answers quiz.Answers
	answers, err = s.run()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nYour best matches:")
	recs := engine.Recommend(answers, cfg.TopN)
	err = printRecommendations(s.out, engine.Questions, recs, lang, false)
	return err
}

// session walks the user through the questions one factor at a time.
type session struct {
	engine  *recommend.Engine
	in      *bufio.Scanner
	out     io.Writer
	lang    string
	topN    int
	answers quiz.Answers
}

func newSession(engine *recommend.Engine, in io.Reader, out io.Writer, lang string, topN int) (s *session) {
	s = &session{
		engine:  engine,
		in:      bufio.NewScanner(in),
		out:     out,
		lang:    lang,
		topN:    topN,
		answers: engine.Questions.Defaults(),
	}
	return s
}

// run asks every question and returns the final answers. End of input
// finishes the quiz with the answers given so far.
func (s *session) run() (answers quiz.Answers, err error) {
	questions := s.engine.Questions.Questions
	idx := 0

	for idx < len(questions) {
		q := questions[idx]
		s.ask(idx, len(questions), q)

		if !s.in.Scan() {
			err = s.in.Err()
			if err != nil {
				err = errors.Wrap(err, "failed to read answer")
			}
			answers = s.answers
			return answers, err
		}

		input := strings.TrimSpace(s.in.Text())
		switch strings.ToLower(input) {
		case "":
			idx++
			continue
		case "q":
			answers = s.answers
			return answers, err
		case "b":
			if idx > 0 {
				idx--
			}
			continue
		case "r":
			s.answers = s.engine.Questions.Reset()
			idx = 0
			fmt.Fprintln(s.out, "Answers reset.")
			s.showRanking()
			continue
		}

		option, ok := resolveOption(q, input)
		if !ok {
			fmt.Fprintf(s.out, "Unknown choice %q, enter 1-%d or an option id.\n", input, len(q.Options))
			continue
		}

		s.answers, err = s.engine.Questions.Answer(s.answers, q.ID, option)
		if err != nil {
			return s.answers, err
		}
		logging.Debug().Str("factor", q.ID).Str("option", option).Msg("Answer changed")

		s.showRanking()
		idx++
	}

	answers = s.answers
	return answers, err
}

func (s *session) ask(idx, total int, q quiz.Question) {
	fmt.Fprintf(s.out, "\n[%d/%d] %s\n", idx+1, total, q.Title(s.lang))
	current := s.answers[q.ID]
	for i, o := range q.Options {
		marker := " "
		if o.ID == current {
			marker = "*"
		}
		fmt.Fprintf(s.out, "  %s %d) %s\n", marker, i+1, o.Label(s.lang))
	}
	fmt.Fprint(s.out, "> ")
}

func (s *session) showRanking() {
	recs := s.engine.Recommend(s.answers, s.topN)

	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, fmt.Sprintf("%s (%d)", rec.Candidate.Name, rec.Score))
	}
	fmt.Fprintf(s.out, "Current top: %s\n", strings.Join(names, ", "))
}

// resolveOption accepts a 1-based option number or an option id.
func resolveOption(q quiz.Question, input string) (option string, ok bool) {
	n, convErr := strconv.Atoi(input)
	if convErr == nil {
		if n >= 1 && n <= len(q.Options) {
			option = q.Options[n-1].ID
			ok = true
		}
		return option, ok
	}

	if q.HasOption(input) {
		option = input
		ok = true
	}
	return option, ok
}
