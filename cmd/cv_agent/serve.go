package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/optimizer"
	"github.com/jonathan/cv-optimizer/internal/server"
	"github.com/jonathan/cv-optimizer/internal/server/ratelimit"
)

var (
	servePort     int
	serveProvider string
	serveNoDB     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing reply parsing, CV optimisation and run history.
Optimisation endpoints need a model API key. Runs are stored when DATABASE_URL is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides CV_LISTEN_ADDR)")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "Model provider: anthropic or gemini")
	serveCmd.Flags().BoolVar(&serveNoDB, "no-db", false, "Do not store runs even when DATABASE_URL is set")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := config.Config{Provider: serveProvider, Verbose: verbose}
	if servePort > 0 {
		flags.ListenAddr = fmt.Sprintf(":%d", servePort)
	}
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)
	ctx := cmd.Context()

	srvCfg := server.Config{
		Addr:      cfg.Addr(),
		Logger:    logger,
		RateLimit: ratelimit.LoadConfig(),
	}

	var opts []optimizer.Option
	if cfg.DatabaseURL != "" && !serveNoDB {
		database, err := connectStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()
		srvCfg.Store = database
		opts = append(opts, optimizer.WithStore(database))
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		logger.WithError(err).Warn("Model client unavailable, optimisation endpoints disabled")
	} else {
		defer func() { _ = client.Close() }()
		opts = append(opts, optimizer.WithLogger(logger))
		srvCfg.Optimizer = optimizer.New(client, opts...)
	}

	return server.New(srvCfg).Start()
}
