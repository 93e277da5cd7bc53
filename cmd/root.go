package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var catalogSource string

//nolint:gochecknoglobals // Cobra boilerplate
var questionsSource string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "distro-quiz",
	Short: "Find the Linux distribution that fits you",
	Long: `distro-quiz asks a handful of questions about your hardware, habits and
preferences, scores every distribution in its catalog against your answers and
recommends the best matches together with the desktop edition that suits you.

Questions and the distribution catalog are built in. Both can be replaced with
YAML files or URLs via --questions and --catalog, or in the config file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.distro-quiz/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog", "", "catalog YAML file or URL (default is the built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&questionsSource, "questions", "", "questions YAML file or URL (default is the built-in questions)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
