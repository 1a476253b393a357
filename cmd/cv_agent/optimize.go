package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/observability"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Analyze a CV against a niche and an optional job offer",
	Long: `Run the analysis, improvements, checklist and ATS steps concurrently and
write the combined result as JSON. The offer comes from a text file or a URL.`,
	RunE: runOptimize,
}

var (
	optCV         string
	optNiche      string
	optOffer      string
	optOfferURL   string
	optProvider   string
	optOut        string
	optSave       bool
	optUseBrowser bool
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&optCV, "cv", "", "Path to the CV (.pdf, .docx, .md or .txt)")
	cmd.Flags().StringVarP(&optNiche, "niche", "n", "", "Target niche, see the niches command")
	cmd.Flags().StringVar(&optOffer, "offer", "", "Path to the job offer text")
	cmd.Flags().StringVar(&optOfferURL, "offer-url", "", "URL of the job offer")
	cmd.Flags().StringVar(&optProvider, "provider", "", "Model provider: anthropic or gemini")
	cmd.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Render the offer page with headless Chrome when needed")
	cmd.Flags().StringVarP(&optOut, "out", "o", "", "Output file (default stdout)")
	cmd.MarkFlagsMutuallyExclusive("offer", "offer-url")
}

func init() {
	addInputFlags(optimizeCmd)
	optimizeCmd.Flags().BoolVar(&optSave, "save", false, "Store the run in the database at DATABASE_URL")
	rootCmd.AddCommand(optimizeCmd)
}

func inputConfig() config.Config {
	return config.Config{
		CV:         optCV,
		Niche:      optNiche,
		Offer:      optOffer,
		OfferURL:   optOfferURL,
		Provider:   optProvider,
		UseBrowser: optUseBrowser,
		Verbose:    verbose,
	}
}

// openOutput returns stdout when path is empty.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(inputConfig())
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)

	ctx, cancel := withTimeout(cmd.Context(), cfg)
	defer cancel()

	req, err := buildRequest(ctx, cfg, logger)
	if err != nil {
		return err
	}
	svc, cleanup, err := newService(ctx, cfg, logger, optSave)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.Optimize(ctx, req)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintOptimization(result)
	}

	out, closeOut, err := openOutput(cmd, optOut)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		_ = closeOut()
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := closeOut(); err != nil {
		return err
	}
	if optOut != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Run %s written to %s\n", result.RunID, optOut)
	}
	return nil
}
