package recommend

import (
	"cmp"
	"slices"

	"github.com/nikogura/distro-quiz/pkg/catalog"
	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/nikogura/distro-quiz/pkg/scorer"
)

// DefaultTopN is the number of candidates shown to the user.
const DefaultTopN = 3

// Ranked is a candidate with its computed score.
type Ranked struct {
	Candidate catalog.Candidate
	Score     int
}

// Rank scores every candidate with the default scorer and returns the best topN.
func Rank(cat catalog.Catalog, answers quiz.Answers, topN int) (ranked []Ranked) {
	ranked = RankWith(scorer.NewScorer(), cat, answers, topN)
	return ranked
}

// RankWith scores every candidate, sorts by score descending and returns the
// first topN. Candidates with equal scores keep their catalog order. A topN of
// zero or less, or one larger than the catalog, returns every candidate.
func RankWith(s *scorer.Scorer, cat catalog.Catalog, answers quiz.Answers, topN int) (ranked []Ranked) {
	ranked = make([]Ranked, 0, len(cat.Candidates))
	for _, cand := range cat.Candidates {
		ranked = append(ranked, Ranked{
			Candidate: cand,
			Score:     s.Score(cand, answers),
		})
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
