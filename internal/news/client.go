// Package news は外部ニュースプロバイダ連携を提供する。
// トップヘッドラインAPIの呼び出しと、ユーザー設定に基づく取得ロジックを含む。
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// headlinesPath はトップヘッドライン取得APIのパス。
const headlinesPath = "/v2/top-headlines"

// Source は記事の提供元を表す。
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article はプロバイダが返す記事1件を表す。
// フィールド名はプロバイダのレスポンススキーマに合わせる。
type Article struct {
	Source      Source `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// headlinesResponse はトップヘッドラインAPIのレスポンスボディ。
type headlinesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// ClientConfig はClientの設定。
type ClientConfig struct {
	BaseURL    string
	APIKey     string
	RatePerSec float64 // プロバイダ呼び出しのクライアント側スロットル（req/sec）
}

// Client はニュースプロバイダAPIのクライアント。
// プロバイダへの過剰な呼び出しを避けるため、リクエストをレートリミッタで
// 間引いてから送る。
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	baseURL    string // テスト用にエンドポイントを差し替え可能
	apiKey     string
}

// NewClient はClientの新しいインスタンスを生成する。
func NewClient(httpClient *http.Client, logger *slog.Logger, cfg ClientConfig) *Client {
	ratePerSec := cfg.RatePerSec
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), 1),
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// TopHeadlines は指定カテゴリ・言語のトップヘッドラインを取得する。
// 失敗時の詳細はログにのみ記録する。呼び出し元はエラーの中身をクライアントへ
// 返さないこと。
func (c *Client) TopHeadlines(ctx context.Context, category, language string) ([]Article, error) {
	// プロバイダ側のレート制限に先回りして呼び出しを間引く
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	// リクエストURL構築
	reqURL, err := url.Parse(c.baseURL + headlinesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provider URL: %w", err)
	}

	q := reqURL.Query()
	q.Set("category", category)
	q.Set("language", language)
	q.Set("apiKey", c.apiKey)
	reqURL.RawQuery = q.Encode()

	// HTTPリクエスト作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Newsdeck/1.0")

	// HTTPリクエスト実行
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("news provider request failed",
			slog.String("error", err.Error()),
			slog.String("category", category),
			slog.String("language", language),
		)
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	// HTTPステータスチェック
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("news provider returned error status",
			slog.Int("http_status", resp.StatusCode),
			slog.String("category", category),
			slog.String("language", language),
		)
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	// レスポンスボディ読み取り
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read provider response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	// JSONデコード
	var result headlinesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error("failed to parse provider response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	if result.Status != "ok" {
		c.logger.Error("news provider reported failure",
			slog.String("provider_status", result.Status),
		)
		return nil, fmt.Errorf("provider reported status %q", result.Status)
	}

	return result.Articles, nil
}
