// Package recommend ranks catalog candidates against quiz answers and picks a
// desktop variant for each.
package recommend

import (
	"github.com/nikogura/distro-quiz/pkg/catalog"
	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/nikogura/distro-quiz/pkg/scorer"
)

// Recommendation is a ranked candidate with its chosen variant.
type Recommendation struct {
	Candidate catalog.Candidate `json:"candidate"`
	Variant   catalog.Variant   `json:"variant"`
	Score     int               `json:"score"`
	Breakdown scorer.Breakdown  `json:"breakdown"`
}

// Engine bundles the static data the quiz runs against. It is read-only after
// construction and safe for concurrent use.
type Engine struct {
	Questions quiz.QuestionSet
	Catalog   catalog.Catalog
	Scorer    *scorer.Scorer
}

// NewEngine creates an engine with the default scorer.
func NewEngine(questions quiz.QuestionSet, cat catalog.Catalog) (engine *Engine) {
	engine = &Engine{
		Questions: questions,
		Catalog:   cat,
		Scorer:    scorer.NewScorer(),
	}
	return engine
}

// Recommend ranks the catalog and selects a variant for each of the top candidates.
func (e *Engine) Recommend(answers quiz.Answers, topN int) (recs []Recommendation) {
	ranked := RankWith(e.Scorer, e.Catalog, answers, topN)

	recs = make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, Recommendation{
			Candidate: r.Candidate,
			Variant:   SelectVariant(answers, r.Candidate.Variants),
			Score:     r.Score,
			Breakdown: e.Scorer.Explain(r.Candidate, answers),
		})
	}

	return recs
}
