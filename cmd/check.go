package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MokshaVS03/scam-url-detector/config"
)

// checkCmd runs a one-shot assessment for a single URL and prints the result
var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "assess a single url and print the result as json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return check(cmd.Context(), args[0])
	},
}

// init registers the check command on the root command
func init() {
	rootCmd.AddCommand(checkCmd)
}

// check assesses one URL and writes the indented assessment to stdout
func check(ctx context.Context, rawURL string) error {
	cfg := config.New()

	a := setupAssessor(cfg)

	assessCtx, cancel := context.WithTimeout(ctx, cfg.AssessTimeout)
	defer cancel()

	assessment, err := a.Assess(assessCtx, rawURL)
	if err != nil {
		return fmt.Errorf("assessing %s: %w", rawURL, err)
	}

	out, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding assessment: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(out))

	return nil
}
