package scorer

import "github.com/nikogura/distro-quiz/pkg/quiz"

// Factor categories drive the per-factor weight multiplier.
const (
	CategoryPrimaryTechnical = "primary_technical"
	CategoryPhilosophy       = "philosophy"
	CategoryOther            = "other"
)

//nolint:gochecknoglobals // Scoring configuration constants
var FactorCategories = map[string]string{
	quiz.FactorUseCase:       CategoryPrimaryTechnical,
	quiz.FactorGPU:           CategoryPrimaryTechnical,
	quiz.FactorUpdates:       CategoryPhilosophy,
	quiz.FactorPhilosophy:    CategoryPhilosophy,
	quiz.FactorCustomization: CategoryPhilosophy,
}

//nolint:gochecknoglobals // Scoring configuration constants
var CategoryMultipliers = map[string]int{
	CategoryPrimaryTechnical: 3,
	CategoryPhilosophy:       2,
	CategoryOther:            1,
}

// GatingRule adds Delta to every candidate in Candidates when the answer to
// Factor is Option.
type GatingRule struct {
	Name        string
	Description string
	Factor      string
	Option      string
	Candidates  []string
	Delta       int
}

// Applies reports whether the answers trigger the rule.
func (r GatingRule) Applies(answers quiz.Answers) (result bool) {
	result = answers[r.Factor] == r.Option
	return result
}

// Affects reports whether the rule targets candidateID.
func (r GatingRule) Affects(candidateID string) (result bool) {
	for _, id := range r.Candidates {
		if id == candidateID {
			result = true
			return result
		}
	}
	return result
}

// GatingRules are evaluated in order after the weighted sum. Every applicable
// rule applies.
//
//nolint:gochecknoglobals // Scoring configuration constants
var GatingRules = []GatingRule{
	// Graphics hardware
	{
		Name:        "NVIDIA_MANUAL_DRIVERS",
		Description: "Proprietary NVIDIA drivers need manual or unfriendly setup",
		Factor:      quiz.FactorGPU,
		Option:      quiz.OptionNvidia,
		Candidates:  []string{"debian", "arch", "fedora", "opensuse_tumbleweed"},
		Delta:       -30,
	},
	{
		Name:        "NVIDIA_DRIVER_TOOLING",
		Description: "Ships proprietary NVIDIA drivers or a driver manager out of the box",
		Factor:      quiz.FactorGPU,
		Option:      quiz.OptionNvidia,
		Candidates:  []string{"popos", "ubuntu", "nobara", "bazzite", "linuxmint"},
		Delta:       15,
	},

	// Form factor
	{
		Name:        "HANDHELD_OPTIMIZED",
		Description: "Handheld-optimized kernel, gamescope session and controller tooling",
		Factor:      quiz.FactorDevice,
		Option:      quiz.OptionHandheld,
		Candidates:  []string{"bazzite", "chimeraos"},
		Delta:       40,
	},
	{
		Name:        "HANDHELD_BROKEN",
		Description: "Known to break on handheld screens, controllers or power management",
		Factor:      quiz.FactorDevice,
		Option:      quiz.OptionHandheld,
		Candidates:  []string{"linuxmint", "elementary", "debian", "mxlinux"},
		Delta:       -40,
	},

	// Snapshots
	{
		Name:        "SNAPSHOTS_BUILTIN",
		Description: "Built-in snapshot or atomic rollback system",
		Factor:      quiz.FactorRollback,
		Option:      quiz.OptionEssential,
		Candidates:  []string{"opensuse_tumbleweed", "fedora_silverblue", "nixos", "bazzite"},
		Delta:       20,
	},
	{
		Name:        "SNAPSHOTS_MISSING",
		Description: "No snapshot or rollback system configured by default",
		Factor:      quiz.FactorRollback,
		Option:      quiz.OptionEssential,
		Candidates:  []string{"arch", "debian", "mxlinux"},
		Delta:       -15,
	},

	// Software freedom
	{
		Name:        "FOSS_STRICT",
		Description: "Strict free and open source software policy",
		Factor:      quiz.FactorPhilosophy,
		Option:      quiz.OptionFOSS,
		Candidates:  []string{"debian", "fedora", "fedora_silverblue", "nixos"},
		Delta:       20,
	},
	{
		Name:        "FOSS_PROPRIETARY_BUNDLED",
		Description: "Bundles significant proprietary drivers, codecs or tooling",
		Factor:      quiz.FactorPhilosophy,
		Option:      quiz.OptionFOSS,
		Candidates:  []string{"ubuntu", "popos", "nobara", "bazzite"},
		Delta:       -25,
	},
}
