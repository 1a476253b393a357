package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/observability"
	"github.com/jonathan/cv-optimizer/internal/parsing"
	"github.com/jonathan/cv-optimizer/internal/schemas"
	"github.com/jonathan/cv-optimizer/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a saved model reply into structured JSON",
	Long: `Parse a markdown reply of kind analysis, checklist, ats or improvements.
Malformed blocks are dropped and listed in the report. A header with a
non-numeric score fails the command.`,
	RunE: runParse,
}

var (
	parseKind      string
	parseIn        string
	parseNormalize bool
	parseValidate  bool
	parseFormat    string
)

func init() {
	parseCmd.Flags().StringVarP(&parseKind, "kind", "k", "", "Document kind: analysis, checklist, ats or improvements (required)")
	parseCmd.Flags().StringVarP(&parseIn, "in", "i", "-", "Reply file, or - for stdin")
	parseCmd.Flags().BoolVar(&parseNormalize, "normalize", false, "Clean fences, invisible characters and stray labels first")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Check the result against its JSON schema")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "Output format: json or text")

	_ = parseCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(parseCmd)
}

// parseOutput is the JSON written by parse
type parseOutput struct {
	Kind   string            `json:"kind"`
	Result any               `json:"result"`
	Report types.ParseReport `json:"report"`
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func runParse(cmd *cobra.Command, _ []string) error {
	if parseFormat != "json" && parseFormat != "text" {
		return fmt.Errorf("invalid --format %q: expected json or text", parseFormat)
	}

	kind, err := parsing.ParseKind(parseKind)
	if err != nil {
		return err
	}
	data, err := readInput(parseIn, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read reply: %w", err)
	}

	logger := newLogger(verbose)
	result, report, err := parsing.Parse(kind, string(data), parsing.Options{Normalize: parseNormalize})
	if err != nil {
		return err
	}
	for _, r := range report.Rejections {
		logger.WithField("block", r.Index).WithField("field", r.Field).Debug(r.Reason)
	}

	if parseValidate {
		if err := schemas.Validate(parseKind, result); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if parseFormat == "text" {
		p := observability.NewPrinter(out)
		printResult(p, result)
		p.PrintReport(parseKind, report)
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(parseOutput{Kind: parseKind, Result: result, Report: report})
}

func printResult(p *observability.Printer, result any) {
	switch r := result.(type) {
	case types.AnalysisResult:
		p.PrintAnalysis(&r)
	case types.ChecklistResult:
		p.PrintChecklist(&r)
	case types.AtsResult:
		p.PrintAts(&r)
	case types.ImprovementsResult:
		p.PrintImprovements(&r)
	}
}
