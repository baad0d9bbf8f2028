package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/sukalov/lyricecho/internal/bot"
	"github.com/sukalov/lyricecho/internal/config"
	"github.com/sukalov/lyricecho/internal/db"
	"github.com/sukalov/lyricecho/internal/genius"
	"github.com/sukalov/lyricecho/internal/logger"
	"github.com/sukalov/lyricecho/internal/lyrics"
	"github.com/sukalov/lyricecho/internal/metrics"
	"github.com/sukalov/lyricecho/internal/server"
	"github.com/sukalov/lyricecho/internal/session"
	"github.com/sukalov/lyricecho/internal/skill"
)

const shutdownTimeout = 10 * time.Second

func serveCMD() *cobra.Command {
	var addr string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the skill webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			return run(cmd.Context(), cfg)
		},
	}
	serve.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	return serve
}

func run(parent context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Init(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if cfg.LogBot.Token != "" {
		logBot, err := bot.New("log", cfg.LogBot.Token)
		if err != nil {
			logger.Warn("log channel disabled", "error", err)
		} else {
			logger.SetChannel(logBot, cfg.LogBot.ChannelID, logger.ParseLevel("error"))
			logger.Info("log channel enabled", "bot", logBot.Name(), "account", logBot.Client.Self.UserName)
		}
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []skill.Option{skill.WithMetrics(metrics.New(reg))}
	if cfg.HistoryEnabled() {
		database, err := db.Open(cfg.History.DatabaseURL, cfg.History.AuthToken)
		if err != nil {
			return err
		}
		defer db.Close(database)

		history := db.NewHistory(database)
		if err := history.Migrate(ctx); err != nil {
			return err
		}
		opts = append(opts, skill.WithRecorder(history))
	}

	sk := skill.New(
		genius.New(cfg.Genius.BaseURL, cfg.Genius.Token, cfg.Genius.Timeout),
		lyrics.NewService(cfg.Genius.Timeout),
		store,
		opts...,
	)
	srv := server.New(sk, reg)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(cfg.Addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if !cfg.RedisEnabled() {
		logger.Info("using in-memory session store")
		return session.NewMemoryStore(cfg.Sessions.TTL), func() {}, nil
	}

	store, err := session.NewRedisStore(cfg.Redis.URL, cfg.Redis.Password, cfg.Sessions.TTL)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	logger.Success("connected to redis session store")
	return store, func() { _ = store.Close() }, nil
}
