package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathmentor/internal/config"
	"github.com/abhisek/mathmentor/internal/diagnosis"
	"github.com/abhisek/mathmentor/internal/evaluation"
	"github.com/abhisek/mathmentor/internal/llm"
	"github.com/abhisek/mathmentor/internal/server"
	"github.com/abhisek/mathmentor/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MENTOR_ADDR env var)")
}

// runServe opens the store, builds the pipelines, and serves HTTP until
// interrupted.
func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	cfg := config.FromEnv()
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		cfg.Addr = a
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	audit := st.AuditLog()

	diagProvider, evalProvider := buildProviders(ctx, audit, log)

	diagCfg := diagnosis.DefaultConfig()
	diagCfg.DefaultLanguage = cfg.DefaultLanguage
	diagService := diagnosis.NewService(diagProvider, diagCfg, log)
	evalService := evaluation.NewService(evalProvider, evaluation.DefaultConfig(), log)

	srv := server.New(cfg.Addr, diagService, evalService, audit, log)
	return srv.Run(ctx)
}

// buildProviders constructs the two provider stacks. The diagnosis provider
// runs with transport retries disabled: the pipeline manages its own call
// budget and a retrying transport would multiply it. The evaluation provider
// keeps the default retry policy since it makes a single logical call.
//
// When no provider is configured, every model call fails fast and both
// pipelines serve their deterministic fallbacks.
func buildProviders(ctx context.Context, audit store.AuditLog, log *zap.Logger) (llm.Provider, llm.Provider) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			log.Warn("LLM provider not configured, serving deterministic fallbacks only", zap.Error(err))
			unavailable := llm.NewMockProvider()
			return unavailable, unavailable
		}
		cfg = discovered
	}

	diagCfg := cfg
	diagCfg.Retry.MaxAttempts = 1
	diagProvider, err := llm.NewProvider(ctx, diagCfg, audit)
	if err != nil {
		log.Warn("LLM provider init failed, serving deterministic fallbacks only", zap.Error(err))
		unavailable := llm.NewMockProvider()
		return unavailable, unavailable
	}

	evalProvider, err := llm.NewProvider(ctx, cfg, audit)
	if err != nil {
		return diagProvider, diagProvider
	}
	return diagProvider, evalProvider
}
