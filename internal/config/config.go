package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config はアプリケーション設定
type Config struct {
	// HTTPサーバー
	Host string
	Port string

	// ワークフローの保存先: "memory" または "sqlite"
	StoreBackend string

	// ログ
	LogFile  string
	LogLevel slog.Level

	Debug bool
}

// Load は.envファイルを読み込んだ上で環境変数から設定を取得
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv は現在の環境変数のみから設定を取得
func FromEnv() Config {
	return Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "8000"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", "memory")),

		LogFile:  getEnv("LOG_FILE", ""),
		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "INFO")),

		Debug: getEnv("DEBUG", "false") == "true",
	}
}

// Address はHTTPサーバーの待ち受けアドレスを返す
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate は未対応の値を検出する
func (c Config) Validate() error {
	switch c.StoreBackend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("STORE_BACKEND: unsupported value %q", c.StoreBackend)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT: must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
