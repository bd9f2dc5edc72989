package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookpub/internal/config"
	"bookpub/internal/server"
	"bookpub/internal/storage"
	"bookpub/internal/version"
	"bookpub/internal/workflow"
)

func main() {
	// .envファイルを読み込み、環境変数から設定を取得
	cfg := config.Load()

	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("server exited with error", "error", err)
		_ = closeLog()
		os.Exit(1)
	}
	_ = closeLog()
}

// run はctxがキャンセルされるかサーバーが失敗するまで待ち、失敗時はそのエラーを返す
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// ワークフローの保存先
	store, err := storage.NewStore(cfg.StoreBackend)
	if err != nil {
		return fmt.Errorf("open %s workflow store: %w", cfg.StoreBackend, err)
	}
	defer store.Close()

	registry := workflow.NewRegistry(store, workflow.WithLogger(logger))
	e := server.New(registry, logger, server.Options{Debug: cfg.Debug})

	// サーバー起動
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting book publisher",
			"version", version.Version,
			"address", cfg.Address(),
			"store", cfg.StoreBackend,
		)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("serve %s: %w", cfg.Address(), err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("server stopped")
	return nil
}
