package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "checkctl",
	Short: "Check a PDF document against natural-language rules",
	Long: `checkctl submits a PDF together with a list of natural-language rules
to a running PDF Rule Checker server and renders the per-rule verdicts.

Each rule gets a pass/fail/inconclusive verdict with supporting evidence,
reasoning, and a confidence score, as judged by the configured LLM.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("checkctl v1.0.0")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}
