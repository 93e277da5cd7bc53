package quiz

// Factor identifiers. Each factor is answered by exactly one Question.
const (
	FactorExperience    = "experience"
	FactorUseCase       = "use_case"
	FactorGPU           = "gpu"
	FactorDevice        = "device"
	FactorDesktopStyle  = "desktop_style"
	FactorUpdates       = "updates"
	FactorPhilosophy    = "philosophy"
	FactorCustomization = "customization"
	FactorRollback      = "rollback"
)

// Option identifiers the recommendation engine refers to directly.
const (
	OptionGaming      = "gaming"
	OptionNvidia      = "nvidia"
	OptionOldGPU      = "old"
	OptionHandheld    = "handheld"
	OptionModern      = "modern"
	OptionTraditional = "traditional"
	OptionTiling      = "tiling"
	OptionAnyStyle    = "any"
	OptionEssential   = "essential"
	OptionFOSS        = "foss"
)

// DefaultLanguage is used when a label has no translation for the requested language.
const DefaultLanguage = "en"

// QuestionSet is the ordered list of quiz questions.
type QuestionSet struct {
	Questions []Question `yaml:"questions" json:"questions" validate:"min=1,dive"`
}

// Question asks about a single factor.
type Question struct {
	ID      string            `yaml:"id" json:"id" validate:"required"`
	Icon    string            `yaml:"icon,omitempty" json:"icon,omitempty"`
	Titles  map[string]string `yaml:"titles,omitempty" json:"titles,omitempty"`
	Default string            `yaml:"default,omitempty" json:"default,omitempty"`
	Options []Option          `yaml:"options" json:"options" validate:"min=1,dive"`
}

// Option is one discrete answer to a Question.
type Option struct {
	ID     string            `yaml:"id" json:"id" validate:"required"`
	Icon   string            `yaml:"icon,omitempty" json:"icon,omitempty"`
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Answers maps a factor to the selected option. Answers are never persisted.
type Answers map[string]string
