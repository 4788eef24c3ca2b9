package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"rulecheck/pdf-rule-checker/internal/client"
	"rulecheck/pdf-rule-checker/internal/models"
)

var (
	serverURL string
	ruleArgs  []string
	timeout   time.Duration
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <pdf-file>",
	Short: "Check a PDF against one or more rules",
	Long: `Check uploads a PDF file together with a list of rules and prints a
table with one verdict per rule.

Example:
  checkctl check contract.pdf -r "Document contains a signature"
  checkctl check report.pdf -r "Mentions Q3 revenue" -r "Has a summary section"`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&serverURL, "server", "http://localhost:3000", "rule checker server URL")
	checkCmd.Flags().StringArrayVarP(&ruleArgs, "rule", "r", nil, "rule to check (repeatable)")
	checkCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "request timeout")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pdfPath := args[0]

	// Blank rules are dropped client-side; the server would only echo them
	// back as format errors.
	rules := make([]string, 0, len(ruleArgs))
	for _, rule := range ruleArgs {
		if strings.TrimSpace(rule) != "" {
			rules = append(rules, rule)
		}
	}
	if len(rules) == 0 {
		return fmt.Errorf("at least one non-empty rule is required (use --rule)")
	}

	file, err := os.Open(pdfPath)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", pdfPath, err)
	}
	defer file.Close()

	if verbose {
		fmt.Fprintf(os.Stderr, "Server: %s\n", serverURL)
		fmt.Fprintf(os.Stderr, "File: %s\n", pdfPath)
		fmt.Fprintf(os.Stderr, "Rules: %d\n", len(rules))
		fmt.Fprintln(os.Stderr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	results, err := client.New(serverURL).Check(ctx, filepath.Base(pdfPath), file, rules)
	if err != nil {
		return err
	}

	renderResults(os.Stdout, results)
	return nil
}

func renderResults(w io.Writer, results []models.EvaluationResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tSTATUS\tCONFIDENCE\tEVIDENCE\tREASONING")

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s %s\t%3d%% %s\t%s\t%s\n",
			clip(r.Rule, 40),
			statusMarker(r.Status), r.Status,
			r.Confidence, confidenceBar(r.Confidence),
			clip(r.Evidence, 40),
			clip(r.Reasoning, 60),
		)
	}

	tw.Flush()
}

func statusMarker(status models.RuleStatus) string {
	switch status {
	case models.StatusPass:
		return "✓"
	case models.StatusFail:
		return "✗"
	case models.StatusInconclusive:
		return "?"
	default:
		return "!"
	}
}

// confidenceBar renders confidence as a 10-segment bar.
func confidenceBar(confidence int) string {
	filled := confidence / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func clip(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
