// Package server は画面とワークフローAPIを提供するechoインスタンスを組み立てる
package server

import (
	"context"
	"log/slog"

	"bookpub/internal/handlers"
	"bookpub/internal/workflow"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Options はechoインスタンスの設定
type Options struct {
	Debug bool
}

// New はミドルウェアとルートを登録したechoインスタンスを作成
func New(registry *workflow.Registry, logger *slog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = opts.Debug

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	RegisterRoutes(e, registry)
	return e
}

// RegisterRoutes はルートを登録
func RegisterRoutes(e *echo.Echo, registry *workflow.Registry) {
	workflows := handlers.NewWorkflowHandler(registry)
	health := handlers.NewHealthHandler(registry)

	e.GET("/", handlers.Dashboard)
	e.GET("/docs", handlers.Docs)
	e.GET("/health", health.Check)

	api := e.Group("/api/workflow")
	api.POST("/start", workflows.Start)
	api.GET("/status/:session_id", workflows.Status)
	api.GET("/stats", workflows.Stats)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(context.Background(), slog.LevelError, "request", attrs...)
				return nil
			}
			logger.LogAttrs(context.Background(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}
