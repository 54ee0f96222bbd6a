package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suapapa/lotto645/internal/logger"
	"github.com/suapapa/lotto645/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// serveMetrics exposes m on addr and returns a function that stops the server.
func serveMetrics(ctx context.Context, addr string, m *metrics.Metrics) func(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(ctx, "starting metrics server...", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "could not start metrics server", zap.Error(err))
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping metrics server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop metrics server", zap.Error(err))
		}
	}
}

func botCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Runs the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validateBot(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var history WinningHistory
			if cfg.HistoryCSV != "" {
				var err error
				if history, err = loadWinningHistory(cfg.HistoryCSV); err != nil {
					return fmt.Errorf("failed to load winning history: %w", err)
				}
				logger.Info(ctx, "loaded winning history", zap.Int("draws", len(history)))
			}

			var picker luckyPicker
			if cfg.AI.Enabled {
				lottoAI, err := NewLottoAI(ctx, cfg.AI.Model, cfg.Prompt, history.Recent(cfg.AI.RecentDraws))
				if err != nil {
					return fmt.Errorf("failed to create LottoAI: %w", err)
				}
				picker = lottoAI
			}

			m := metrics.New()
			if cfg.MetricsAddr != "" {
				stopMetrics := serveMetrics(ctx, cfg.MetricsAddr, m)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
					defer cancel()
					stopMetrics(shutdownCtx)
				}()
			}

			h := newCommandHandler(newGenerator(cfg), picker, history, m, cfg.compareOptions())

			// 텔레그렘 봇 시작
			logger.Info(ctx, "starting Telegram bot...")
			tb, err := NewTelegramBot(ctx, h, cfg.TelegramAPIToken, cfg.ChatIDs...)
			if err != nil {
				return err
			}
			defer tb.Close()

			go tb.Listen(ctx)

			logger.Info(ctx, "Telegram bot started. Listening for commands...")
			<-ctx.Done()
			logger.Info(ctx, "received shutdown signal. shutting down...")
			return nil
		},
	}
}
