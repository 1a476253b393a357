package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/optimizer"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a CV for a niche, or suggest improvements",
	Long:  "Rewrite the whole CV as markdown tailored to the niche and offer. With --suggestions, return coaching suggestions instead.",
	RunE:  runRewrite,
}

var rewriteSuggestions bool

func init() {
	addInputFlags(rewriteCmd)
	rewriteCmd.Flags().BoolVar(&rewriteSuggestions, "suggestions", false, "Return improvement suggestions instead of a rewrite")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, _ []string) error {
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
	svc, cleanup, err := newService(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer cleanup()

	var result *optimizer.TextResult
	if rewriteSuggestions {
		result, err = svc.Suggest(ctx, req)
	} else {
		result, err = svc.Rewrite(ctx, req)
	}
	if err != nil {
		return err
	}
	logger.WithField("tokens", result.Tokens).Debug("Rewrite completed")

	out, closeOut, err := openOutput(cmd, optOut)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, result.Markdown); err != nil {
		_ = closeOut()
		return fmt.Errorf("failed to write result: %w", err)
	}
	return closeOut()
}
