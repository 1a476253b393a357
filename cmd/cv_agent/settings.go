package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/db"
	"github.com/jonathan/cv-optimizer/internal/fetch"
	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/optimizer"
	"github.com/jonathan/cv-optimizer/internal/types"
)

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// resolveConfig layers flags over the --config file over the environment.
func resolveConfig(flags config.Config) (*config.Config, error) {
	defaults := config.FromEnv()
	if configPath != "" {
		file, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		defaults = file.MergeWithDefaults(defaults)
		flags.UseBrowser = flags.UseBrowser || file.UseBrowser
		flags.Verbose = flags.Verbose || file.Verbose
	}
	cfg := flags.MergeWithDefaults(defaults)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newClient builds the model client of the configured provider.
func newClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	llmCfg, err := cfg.LLMConfig()
	if err != nil {
		return nil, err
	}
	apiKey, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}
	return llm.NewClient(ctx, llmCfg, apiKey)
}

// connectStore opens and migrates the run database.
func connectStore(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("%s is not set", config.EnvDatabaseURL)
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// withTimeout applies the configured request timeout, if any.
func withTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg.TimeoutSeconds > 0 {
		return context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
	}
	return context.WithCancel(ctx)
}

// buildRequest reads the CV and the optional offer named by cfg.
func buildRequest(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (types.OptimizationRequest, error) {
	req := types.OptimizationRequest{Niche: cfg.Niche, OfferURL: cfg.OfferURL}
	if cfg.CV == "" {
		return req, fmt.Errorf("--cv is required")
	}
	if cfg.Niche == "" {
		return req, fmt.Errorf("--niche is required")
	}

	cv, meta, err := ingestion.ReadCV(cfg.CV)
	if err != nil {
		return req, fmt.Errorf("failed to read CV: %w", err)
	}
	req.CV = cv
	logger.WithFields(logrus.Fields{"format": meta.Format, "chars": meta.Chars}).Debug("Loaded CV")

	switch {
	case cfg.Offer != "":
		data, err := os.ReadFile(cfg.Offer)
		if err != nil {
			return req, fmt.Errorf("failed to read offer: %w", err)
		}
		req.Offer = ingestion.CleanText(string(data))
	case cfg.OfferURL != "":
		offer, meta, err := ingestion.IngestOffer(ctx, cfg.OfferURL, ingestion.OfferOptions{
			UseBrowser: cfg.UseBrowser,
			Fetch:      fetch.DefaultOptions(),
			Logger:     logger,
		})
		if err != nil {
			return req, fmt.Errorf("failed to ingest offer: %w", err)
		}
		req.Offer = offer
		logger.WithFields(logrus.Fields{
			"platform": meta.Platform,
			"title":    meta.Title,
			"browser":  meta.Browser,
		}).Info("Ingested offer")
	}
	if strings.TrimSpace(req.Offer) == "" {
		logger.Debug("No offer given, running generic optimisation")
	}
	return req, nil
}

// newService wires the optimizer. The returned cleanup closes the client
// and the store.
func newService(ctx context.Context, cfg *config.Config, logger *logrus.Logger, save bool) (*optimizer.Service, func(), error) {
	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	opts := []optimizer.Option{optimizer.WithLogger(logger)}
	cleanup := func() { _ = client.Close() }

	if save {
		database, err := connectStore(ctx, cfg)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		opts = append(opts, optimizer.WithStore(database))
		cleanup = func() {
			_ = client.Close()
			database.Close()
		}
	}
	return optimizer.New(client, opts...), cleanup, nil
}
