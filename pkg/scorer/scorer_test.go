package scorer

import (
	"testing"

	"github.com/nikogura/distro-quiz/pkg/catalog"
	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id string, weights map[string]int) (c catalog.Candidate) {
	c = catalog.Candidate{
		ID:       id,
		Name:     id,
		Weights:  weights,
		Variants: []catalog.Variant{{ID: "default", Name: "Default"}},
	}
	return c
}

func TestMultiplier(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		factor string
		want   int
	}{
		{factor: quiz.FactorUseCase, want: 3},
		{factor: quiz.FactorGPU, want: 3},
		{factor: quiz.FactorUpdates, want: 2},
		{factor: quiz.FactorPhilosophy, want: 2},
		{factor: quiz.FactorCustomization, want: 2},
		{factor: quiz.FactorExperience, want: 1},
		{factor: quiz.FactorDevice, want: 1},
		{factor: quiz.FactorDesktopStyle, want: 1},
		{factor: quiz.FactorRollback, want: 1},
		{factor: "unknown_factor", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.factor, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Multiplier(tt.factor))
		})
	}
}

func TestScorePrimaryTechnicalWeight(t *testing.T) {
	c := candidate("synthetic", map[string]int{"gaming": 10})

	score := Score(c, quiz.Answers{quiz.FactorUseCase: "gaming"})
	assert.Equal(t, 30, score)
}

func TestScoreAppliesCategoryMultipliers(t *testing.T) {
	c := candidate("synthetic", map[string]int{
		"gaming":    2, // ×3
		"rolling":   4, // ×2
		"pragmatic": 1, // ×2
		"expert":    5, // ×1
		"laptop":    -3,
	})

	answers := quiz.Answers{
		quiz.FactorUseCase:    "gaming",
		quiz.FactorUpdates:    "rolling",
		quiz.FactorPhilosophy: "pragmatic",
		quiz.FactorExperience: "expert",
		quiz.FactorDevice:     "laptop",
	}

	assert.Equal(t, 6+8+2+5-3, Score(c, answers))
}

func TestScoreUnknownOptionsContributeNothing(t *testing.T) {
	c := candidate("synthetic", map[string]int{"gaming": 10})

	answers := quiz.Answers{
		quiz.FactorUseCase: "no-such-option",
		"no_such_factor":   "gaming",
	}

	// the unknown factor still scores its option at multiplier 1
	assert.Equal(t, 10, Score(c, answers))
	assert.Equal(t, 0, Score(c, quiz.Answers{}))
	assert.Equal(t, 0, Score(catalog.Candidate{}, answers))
}

func TestScoreZeroWeightsIsGatingOnly(t *testing.T) {
	questions, err := quiz.LoadDefault()
	require.NoError(t, err)

	s := NewScorer()
	answers, err := questions.ParseAnswers([]string{
		"gpu=nvidia", "device=handheld", "rollback=essential", "philosophy=foss",
	})
	require.NoError(t, err)

	for _, id := range []string{"debian", "bazzite", "linuxmint", "arch", "elementary", "unknown"} {
		t.Run(id, func(t *testing.T) {
			c := candidate(id, nil)

			want := 0
			for _, rule := range s.Rules() {
				if rule.Applies(answers) && rule.Affects(id) {
					want += rule.Delta
				}
			}

			breakdown := s.Explain(c, answers)
			assert.Equal(t, 0, breakdown.Base)
			assert.Equal(t, want, breakdown.Total)
			assert.Equal(t, want, s.Score(c, answers))
		})
	}
}

func TestGatingRulesAccumulate(t *testing.T) {
	c := candidate("bazzite", nil)

	answers := quiz.Answers{
		quiz.FactorGPU:    quiz.OptionNvidia,
		quiz.FactorDevice: quiz.OptionHandheld,
	}

	breakdown := NewScorer().Explain(c, answers)
	assert.Equal(t, 15+40, breakdown.Total)

	names := []string{}
	for _, g := range breakdown.Gates {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"NVIDIA_DRIVER_TOOLING", "HANDHELD_OPTIMIZED"}, names)
}

func TestGatingRuleValues(t *testing.T) {
	tests := []struct {
		name      string
		answers   quiz.Answers
		candidate string
		want      int
	}{
		{name: "nvidia penalty", answers: quiz.Answers{"gpu": "nvidia"}, candidate: "debian", want: -30},
		{name: "nvidia bonus", answers: quiz.Answers{"gpu": "nvidia"}, candidate: "popos", want: 15},
		{name: "handheld bonus", answers: quiz.Answers{"device": "handheld"}, candidate: "chimeraos", want: 40},
		{name: "handheld penalty", answers: quiz.Answers{"device": "handheld"}, candidate: "elementary", want: -40},
		{name: "snapshot bonus", answers: quiz.Answers{"rollback": "essential"}, candidate: "nixos", want: 20},
		{name: "snapshot penalty", answers: quiz.Answers{"rollback": "essential"}, candidate: "arch", want: -15},
		{name: "foss bonus", answers: quiz.Answers{"philosophy": "foss"}, candidate: "fedora", want: 20},
		{name: "foss penalty", answers: quiz.Answers{"philosophy": "foss"}, candidate: "ubuntu", want: -25},
		{name: "rule not triggered", answers: quiz.Answers{"gpu": "amd"}, candidate: "debian", want: 0},
		{name: "candidate not targeted", answers: quiz.Answers{"gpu": "nvidia"}, candidate: "elementary", want: 0},
		{
			name:      "overlapping bonus and penalty",
			answers:   quiz.Answers{"device": "handheld", "philosophy": "foss"},
			candidate: "bazzite",
			want:      40 - 25,
		},
		{
			name:      "every penalty at once",
			answers:   quiz.Answers{"gpu": "nvidia", "device": "handheld", "rollback": "essential", "philosophy": "foss"},
			candidate: "debian",
			want:      -30 - 40 - 15 + 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(candidate(tt.candidate, nil), tt.answers))
		})
	}
}

func TestScoreIsNotClamped(t *testing.T) {
	c := candidate("debian", map[string]int{"nvidia": -5})

	score := Score(c, quiz.Answers{quiz.FactorGPU: quiz.OptionNvidia})
	assert.Equal(t, -15-30, score)
}

func TestNewScorerWithRules(t *testing.T) {
	rules := []GatingRule{
		{Name: "ONLY", Factor: "device", Option: "laptop", Candidates: []string{"a"}, Delta: 7},
	}
	s := NewScorerWithRules(rules)
	rules[0].Delta = 100

	c := candidate("a", nil)
	assert.Equal(t, 7, s.Score(c, quiz.Answers{"device": "laptop"}))
	assert.Equal(t, 0, s.Score(c, quiz.Answers{"gpu": "nvidia", "device": "handheld"}))

	got := s.Rules()
	got[0].Delta = -1
	assert.Equal(t, 7, s.Rules()[0].Delta)
}

func TestExplainFactorsSorted(t *testing.T) {
	c := candidate("synthetic", map[string]int{"gaming": 2, "expert": 1})

	breakdown := NewScorer().Explain(c, quiz.Answers{
		quiz.FactorUseCase:    "gaming",
		quiz.FactorExperience: "expert",
		quiz.FactorGPU:        "amd",
	})

	require.Len(t, breakdown.Factors, 3)
	assert.Equal(t, quiz.FactorExperience, breakdown.Factors[0].Factor)
	assert.Equal(t, quiz.FactorGPU, breakdown.Factors[1].Factor)
	assert.Equal(t, quiz.FactorUseCase, breakdown.Factors[2].Factor)
	assert.Equal(t, 6, breakdown.Factors[2].Points)
	assert.Equal(t, 7, breakdown.Base)
	assert.Empty(t, breakdown.Gates)
}

func TestHighlights(t *testing.T) {
	b := Breakdown{Factors: []FactorContribution{
		{Factor: "a", Points: 3},
		{Factor: "b", Points: 9},
		{Factor: "c", Points: 0},
		{Factor: "d", Points: -4},
		{Factor: "e", Points: 3},
	}}

	top := b.Highlights(2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Factor)
	assert.Equal(t, "a", top[1].Factor)

	assert.Len(t, b.Highlights(10), 3)
}

func TestGatingRulesTargetCatalogCandidates(t *testing.T) {
	questions, err := quiz.LoadDefault()
	require.NoError(t, err)

	cat, err := catalog.LoadDefault(questions)
	require.NoError(t, err)

	for _, rule := range GatingRules {
		q, ok := questions.Question(rule.Factor)
		require.True(t, ok, "rule %s factor %s", rule.Name, rule.Factor)
		assert.True(t, q.HasOption(rule.Option), "rule %s option %s", rule.Name, rule.Option)

		for _, id := range rule.Candidates {
			_, ok := cat.Candidate(id)
			assert.True(t, ok, "rule %s targets unknown candidate %s", rule.Name, id)
		}
	}
}
