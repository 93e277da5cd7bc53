package catalog

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikogura/distro-quiz/pkg/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `candidates:
  - id: alpha
    name: Alpha
    weights: {gaming: 10}
    variants:
      - {id: gnome, name: GNOME, tags: [gnome], flagship: true}
  - id: beta
    name: Beta
    variants:
      - {id: kde, name: KDE, tags: [kde]}
`

func builtinQuestions(t *testing.T) (set quiz.QuestionSet) {
	t.Helper()
	set, err := quiz.LoadDefault()
	require.NoError(t, err)
	return set
}

func TestLoadDefault(t *testing.T) {
	questions := builtinQuestions(t)

	cat, err := LoadDefault(questions)
	require.NoError(t, err)

	assert.NotEmpty(t, cat.Candidates)
	for _, cand := range cat.Candidates {
		assert.NotEmpty(t, cand.Variants, "candidate %s", cand.ID)
	}

	ubuntu, ok := cat.Candidate("ubuntu")
	require.True(t, ok)
	assert.Equal(t, "Ubuntu", ubuntu.Name)
	assert.True(t, ubuntu.Variants[0].Flagship)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "distros.yaml")

	err := os.WriteFile(path, []byte(testCatalogYAML), 0600)
	require.NoError(t, err)

	cat, err := Load(path, builtinQuestions(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, cat.IDs())
}

func TestLoadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(testCatalogYAML))
	}))
	defer server.Close()

	cat, err := Load(server.URL+"/distros.yaml", builtinQuestions(t))
	require.NoError(t, err)
	assert.Len(t, cat.Candidates, 2)
}

func TestLoadFromURLOversized(t *testing.T) {
	// A valid catalog followed by comment padding parses cleanly if cut short.
	body := testCatalogYAML + strings.Repeat("# padding\n", 500000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	_, err := Load(server.URL+"/distros.yaml", builtinQuestions(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/distros.yaml", builtinQuestions(t))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	questions := builtinQuestions(t)
	variants := []Variant{{ID: "default", Name: "Default"}}

	tests := []struct {
		name      string
		catalog   Catalog
		wantError string
	}{
		{
			name: "valid catalog",
			catalog: Catalog{Candidates: []Candidate{
				{ID: "a", Name: "A", Weights: map[string]int{"gaming": 3, "nvidia": -2}, Variants: variants},
			}},
		},
		{
			name:      "empty catalog",
			catalog:   Catalog{},
			wantError: "Candidates must have at least 1 entries",
		},
		{
			name: "candidate without variants",
			catalog: Catalog{Candidates: []Candidate{
				{ID: "a", Name: "A"},
			}},
			wantError: "Variants must have at least 1 entries",
		},
		{
			name: "candidate missing name",
			catalog: Catalog{Candidates: []Candidate{
				{ID: "a", Variants: variants},
			}},
			wantError: "Name is required",
		},
		{
			name: "bad homepage",
			catalog: Catalog{Candidates: []Candidate{
				{ID: "a", Name: "A", Homepage: "not a url", Variants: variants},
			}},
			wantError: "Homepage",
		},
		{
			name: "duplicate candidate",
			catalog: Catalog{Candidates: []Candidate{
				{ID: "a", Name: "A", Variants: variants},
				{ID: "a", Name: "A again", Variants: variants},
			}},
			wantError: "duplicate ID a",
		},
		{
			name: "duplicate variant",
			catalog: Catalog{Candidates: []Candidate{
				{ID: "a", Name: "A", Variants: append(variants, variants[0])},
			}},
			wantError: "duplicate ID default",
		},
		{
			name: "dangling weight key",
			catalog: Catalog{Candidates: []Candidate{
				{ID: "a", Name: "A", Weights: map[string]int{"gaming": 1, "gamign": 5}, Variants: variants},
			}},
			wantError: "unknown option gamign",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate(questions)
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestCandidateWeight(t *testing.T) {
	cand := Candidate{Weights: map[string]int{"gaming": 7}}

	assert.Equal(t, 7, cand.Weight("gaming"))
	assert.Equal(t, 0, cand.Weight("office"))
	assert.Equal(t, 0, Candidate{}.Weight("gaming"))
}

func TestVariantTags(t *testing.T) {
	v := Variant{ID: "xfce", Tags: []string{"xfce", "classic", "performance"}}

	assert.True(t, v.HasTag("classic"))
	assert.False(t, v.HasTag("kde"))
	assert.True(t, v.HasAnyTag([]string{"kde", "classic"}))
	assert.False(t, v.HasAnyTag(nil))
}

func TestCandidateLookup(t *testing.T) {
	cat := Catalog{Candidates: []Candidate{{ID: "a"}, {ID: "b"}}}

	_, ok := cat.Candidate("b")
	assert.True(t, ok)

	_, ok = cat.Candidate("z")
	assert.False(t, ok)
}
