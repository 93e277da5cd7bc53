package cmd

import (
	"fmt"
	"strings"

	"github.com/nikogura/distro-quiz/pkg/recommend"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the distribution catalog",
}

//nolint:gochecknoglobals // Cobra boilerplate
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog distributions and their desktop editions",
	RunE:  runCatalogList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog and question files",
	Long: `Loads the questions and catalog and checks them: required fields, unique ids,
at least one edition per distribution, and weights that only reference known
answer options.

Example:
  distro-quiz catalog validate --catalog ./distros.yaml --questions ./questions.yaml`,
	RunE: runCatalogValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) (err error) {
	var engine *recommend.Engine
	_, engine, err = setup()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, cand := range engine.Catalog.Candidates {
		editions := make([]string, 0, len(cand.Variants))
		for _, v := range cand.Variants {
			name := v.Name
			if v.Flagship {
				name += "*"
			}
			editions = append(editions, name)
		}
		fmt.Fprintf(out, "%-20s %-22s %s\n", cand.ID, cand.Name, strings.Join(editions, ", "))
	}

	return err
}

func runCatalogValidate(cmd *cobra.Command, args []string) (err error) {
	var engine *recommend.Engine
	_, engine, err = setup()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d questions, %d options, %d distributions, %d gating rules\n",
		len(engine.Questions.Questions), len(engine.Questions.OptionIDs()),
		len(engine.Catalog.Candidates), len(engine.Scorer.Rules()))

	return err
}
