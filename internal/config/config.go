// Package config は環境変数ベースのアプリケーション設定を提供する。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort string

	// Auth
	JWTSecret string        // トークン署名用のプロセス共通シークレット
	TokenTTL  time.Duration // 発行トークンの有効期間

	// News provider
	NewsAPIKey     string
	NewsAPIBaseURL string
	NewsAPITimeout time.Duration
	NewsRatePerSec float64 // プロバイダ呼び出しのクライアント側スロットル

	// Database（未設定の場合はインメモリストアで動作する）
	DatabaseURL string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。
// シークレットにデフォルト値は持たせない。起動時に必ず明示させる。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	if cfg.NewsAPIKey == "" {
		missing = append(missing, "NEWS_API_KEY")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.ServerPort = getEnvString("SERVER_PORT", "3000")
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 1*time.Hour)
	cfg.NewsAPIBaseURL = getEnvString("NEWS_API_BASE_URL", "https://newsapi.org")
	cfg.NewsAPITimeout = getEnvDuration("NEWS_API_TIMEOUT", 10*time.Second)
	cfg.NewsRatePerSec = getEnvFloat("NEWS_RATE_PER_SEC", 1.0)
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
