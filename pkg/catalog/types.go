package catalog

// Catalog is the static list of recommendation candidates.
type Catalog struct {
	Candidates []Candidate `yaml:"candidates" json:"candidates" validate:"min=1,dive"`
}

// Candidate is a Linux distribution that can be recommended.
type Candidate struct {
	ID          string         `yaml:"id" json:"id" validate:"required"`
	Name        string         `yaml:"name" json:"name" validate:"required"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Homepage    string         `yaml:"homepage,omitempty" json:"homepage,omitempty" validate:"omitempty,url"`
	BaseTags    []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Weights     map[string]int `yaml:"weights,omitempty" json:"weights,omitempty"`
	Variants    []Variant      `yaml:"variants" json:"variants" validate:"min=1,dive"`
}

// Variant is a desktop-environment edition of a Candidate. Order is significant.
type Variant struct {
	ID       string   `yaml:"id" json:"id" validate:"required"`
	Name     string   `yaml:"name" json:"name" validate:"required"`
	Tags     []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Flagship bool     `yaml:"flagship,omitempty" json:"flagship,omitempty"`
}
