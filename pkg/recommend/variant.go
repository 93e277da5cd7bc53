package recommend

import (
	"github.com/nikogura/distro-quiz/pkg/catalog"
	"github.com/nikogura/distro-quiz/pkg/quiz"
)

//nolint:gochecknoglobals // Desktop style to variant tag mapping
var styleTags = map[string][]string{
	quiz.OptionModern:      {"gnome"},
	quiz.OptionTraditional: {"kde", "classic"},
	quiz.OptionTiling:      {"tiling"},
}

//nolint:gochecknoglobals // Variant tags suited to dated hardware
var lightweightTags = []string{"performance", "old"}

// PreferredTags returns the variant tags matching the desktop style answer.
// "any" and unrecognized styles have no preference.
func PreferredTags(answers quiz.Answers) (tags []string) {
	tags = styleTags[answers[quiz.FactorDesktopStyle]]
	return tags
}

// SelectVariant picks one variant. In order: the first variant matching the
// preferred desktop style, the first flagship, the first lightweight variant
// when the hardware is old, the first variant. An empty list yields the zero
// Variant; catalog validation rejects that case at load time.
func SelectVariant(answers quiz.Answers, variants []catalog.Variant) (variant catalog.Variant) {
	if len(variants) == 0 {
		return variant
	}

	preferred := PreferredTags(answers)
	if len(preferred) > 0 {
		for _, v := range variants {
			if v.HasAnyTag(preferred) {
				variant = v
				return variant
			}
		}
	}

	for _, v := range variants {
		if v.Flagship {
			variant = v
			return variant
		}
	}

	if answers[quiz.FactorGPU] == quiz.OptionOldGPU {
		for _, v := range variants {
			if v.HasAnyTag(lightweightTags) {
				variant = v
				return variant
			}
		}
	}

	variant = variants[0]
	return variant
}
