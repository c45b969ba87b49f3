package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/llm"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/notify"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/report"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/server"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg := server.Load()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		// The results surface degrades to the canned insight; everything
		// else works without a provider.
		logger.Warn("no LLM provider configured, insights use the canned fallback", zap.Error(err))
		provider = llm.NewMockProvider()
	}

	var cache *insight.Cache
	if cfg.RedisAddr != "" {
		cache = insight.NewCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("redis insight cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	insights := insight.NewService(provider, st.SnapshotRepo(), cache, insight.DefaultConfig())
	mailer := notify.NewMailer(notify.ConfigFromEnv(), logger)
	auth := server.NewAuth(cfg.AdminToken, cfg.JWTSecret)
	registry := server.NewRegistry(0)
	branding := report.DefaultBranding()

	router := server.NewRouter(&server.Container{
		Assessments: server.NewAssessmentHandler(registry, st.LeadRepo(), st.EventRepo(), insights, mailer, branding, cfg.BookingURL, logger),
		Bookings:    server.NewBookingHandler(st.BookingRepo(), logger),
		Admin:       server.NewAdminHandler(auth, st.LeadRepo(), st.BookingRepo(), st.EventRepo(), logger),
		Auth:        auth,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	return server.New(cfg.Addr, router, registry, logger).Run(ctx)
}
