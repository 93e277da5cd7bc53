package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/nikogura/distro-quiz/pkg/recommend"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// recommendationOutput is the --json document.
type recommendationOutput struct {
	Language        string                     `json:"language"`
	Answers         quiz.Answers               `json:"answers"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// factorName turns a factor id like use_case into "Use Case".
func factorName(factor, lang string) (name string) {
	caser := cases.Title(language.Make(lang))
	name = caser.String(strings.ReplaceAll(factor, "_", " "))
	return name
}

// optionLabel returns the localized label of an option, or the id if unknown.
func optionLabel(questions quiz.QuestionSet, factor, optionID, lang string) (label string) {
	label = optionID

	q, ok := questions.Question(factor)
	if !ok {
		return label
	}

	for _, o := range q.Options {
		if o.ID == optionID {
			label = o.Label(lang)
			return label
		}
	}

	return label
}

func printRecommendations(w io.Writer, questions quiz.QuestionSet, recs []recommend.Recommendation, lang string, explain bool) (err error) {
	if len(recs) == 0 {
		_, err = fmt.Fprintln(w, "No recommendations: the catalog is empty.")
		return err
	}

	for i, rec := range recs {
		_, err = fmt.Fprintf(w, "%d. %s (%s)  score %d\n", i+1, rec.Candidate.Name, rec.Variant.Name, rec.Score)
		if err != nil {
			return err
		}

		if rec.Candidate.Description != "" {
			_, err = fmt.Fprintf(w, "   %s\n", rec.Candidate.Description)
			if err != nil {
				return err
			}
		}
		if rec.Candidate.Homepage != "" {
			_, err = fmt.Fprintf(w, "   %s\n", rec.Candidate.Homepage)
			if err != nil {
				return err
			}
		}

		highlights := rec.Breakdown.Highlights(3)
		if len(highlights) > 0 {
			reasons := make([]string, 0, len(highlights))
			for _, h := range highlights {
				reasons = append(reasons, fmt.Sprintf("%s (+%d)", optionLabel(questions, h.Factor, h.Option, lang), h.Points))
			}
			_, err = fmt.Fprintf(w, "   Why: %s\n", strings.Join(reasons, ", "))
			if err != nil {
				return err
			}
		}

		if explain {
			err = printBreakdown(w, questions, rec, lang)
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintln(w)
		if err != nil {
			return err
		}
	}

	return err
}

// printBreakdown writes the score table. The tabwriter buffers until Flush,
// so write errors from the underlying writer surface there.
func printBreakdown(w io.Writer, questions quiz.QuestionSet, rec recommend.Recommendation, lang string) (err error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, err = fmt.Fprintln(tw, "   FACTOR\tANSWER\tWEIGHT\tx\tPOINTS")
	if err != nil {
		return err
	}
	for _, f := range rec.Breakdown.Factors {
		_, err = fmt.Fprintf(tw, "   %s\t%s\t%d\t%d\t%+d\n",
			factorName(f.Factor, lang), optionLabel(questions, f.Factor, f.Option, lang), f.Weight, f.Multiplier, f.Points)
		if err != nil {
			return err
		}
	}
	for _, g := range rec.Breakdown.Gates {
		_, err = fmt.Fprintf(tw, "   %s\t%s\t\t\t%+d\n", g.Name, g.Description, g.Delta)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(tw, "   TOTAL\t\t\t\t%d\n", rec.Breakdown.Total)
	if err != nil {
		return err
	}

	err = tw.Flush()
	if err != nil {
		err = errors.Wrap(err, "failed to write score breakdown")
		return err
	}

	return err
}

func writeJSON(w io.Writer, v interface{}) (err error) {
	var data []byte
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal JSON output")
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
