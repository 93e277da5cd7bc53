package scorer

import (
	"sort"

	"github.com/nikogura/distro-quiz/pkg/catalog"
	"github.com/nikogura/distro-quiz/pkg/quiz"
)

// Scorer computes candidate scores from answers. It holds no mutable state
// and is safe for concurrent use.
type Scorer struct {
	rules       []GatingRule
	categories  map[string]string
	multipliers map[string]int
}

// FactorContribution is the weighted points one answer contributed.
type FactorContribution struct {
	Factor     string `json:"factor"`
	Option     string `json:"option"`
	Weight     int    `json:"weight"`
	Multiplier int    `json:"multiplier"`
	Points     int    `json:"points"`
}

// AppliedRule is a gating rule that fired for a candidate.
type AppliedRule struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Delta       int    `json:"delta"`
}

// Breakdown explains how a score was reached.
type Breakdown struct {
	Factors []FactorContribution `json:"factors"`
	Gates   []AppliedRule        `json:"gates"`
	Base    int                  `json:"base"`
	Gating  int                  `json:"gating"`
	Total   int                  `json:"total"`
}

//nolint:gochecknoglobals // Default scorer over the built-in rule tables
var defaultScorer = NewScorer()

// NewScorer creates a scorer using the built-in multipliers and gating rules.
func NewScorer() (scorer *Scorer) {
	scorer = NewScorerWithRules(GatingRules)
	return scorer
}

// NewScorerWithRules creates a scorer with the built-in multipliers and the given rules.
func NewScorerWithRules(rules []GatingRule) (scorer *Scorer) {
	scorer = &Scorer{
		rules:       append([]GatingRule(nil), rules...),
		categories:  FactorCategories,
		multipliers: CategoryMultipliers,
	}
	return scorer
}

// Score computes a candidate's score with the default scorer.
func Score(candidate catalog.Candidate, answers quiz.Answers) (score int) {
	score = defaultScorer.Score(candidate, answers)
	return score
}

// Rules returns a copy of the scorer's gating rules in evaluation order.
func (s *Scorer) Rules() (rules []GatingRule) {
	rules = append([]GatingRule(nil), s.rules...)
	return rules
}

// Multiplier returns the weight multiplier for a factor. Unclassified factors get 1.
func (s *Scorer) Multiplier(factor string) (multiplier int) {
	category, ok := s.categories[factor]
	if !ok {
		category = CategoryOther
	}

	multiplier, ok = s.multipliers[category]
	if !ok {
		multiplier = 1
	}

	return multiplier
}

// Score computes the candidate's score. Unknown options contribute 0 and the
// result is never clamped.
func (s *Scorer) Score(candidate catalog.Candidate, answers quiz.Answers) (score int) {
	score = s.Explain(candidate, answers).Total
	return score
}

// Explain computes the score along with every factor contribution and gating
// adjustment that produced it.
func (s *Scorer) Explain(candidate catalog.Candidate, answers quiz.Answers) (breakdown Breakdown) {
	breakdown = Breakdown{
		Factors: make([]FactorContribution, 0, len(answers)),
		Gates:   []AppliedRule{},
	}

	for factor, option := range answers {
		weight := candidate.Weight(option)
		multiplier := s.Multiplier(factor)
		points := weight * multiplier

		breakdown.Factors = append(breakdown.Factors, FactorContribution{
			Factor:     factor,
			Option:     option,
			Weight:     weight,
			Multiplier: multiplier,
			Points:     points,
		})
		breakdown.Base += points
	}

	sort.Slice(breakdown.Factors, func(i, j int) bool {
		return breakdown.Factors[i].Factor < breakdown.Factors[j].Factor
	})

	for _, rule := range s.rules {
		if !rule.Applies(answers) || !rule.Affects(candidate.ID) {
			continue
		}

		breakdown.Gates = append(breakdown.Gates, AppliedRule{
			Name:        rule.Name,
			Description: rule.Description,
			Delta:       rule.Delta,
		})
		breakdown.Gating += rule.Delta
	}

	breakdown.Total = breakdown.Base + breakdown.Gating

	return breakdown
}

// Highlights returns up to n factors that added the most points, strongest first.
// Factors that contributed nothing or subtracted points are left out.
func (b Breakdown) Highlights(n int) (top []FactorContribution) {
	top = []FactorContribution{}
	for _, f := range b.Factors {
		if f.Points > 0 {
			top = append(top, f)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Points > top[j].Points
	})

	if n >= 0 && len(top) > n {
		top = top[:n]
	}

	return top
}
