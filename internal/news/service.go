package news

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/newsdeck/internal/model"
	"github.com/hitoshi/newsdeck/internal/repository"
)

// ユーザーが設定を保存していない場合に使うデフォルト値。
const (
	defaultCategory = "technology"
	defaultLanguage = "en"
)

// HeadlinesFetcher はヘッドライン取得に必要なインターフェース。
// Clientの部分集合として定義する。
type HeadlinesFetcher interface {
	TopHeadlines(ctx context.Context, category, language string) ([]Article, error)
}

// FetchMetricsRecorder はニュース取得メトリクスの記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type FetchMetricsRecorder interface {
	RecordNewsFetchSuccess()
	RecordNewsFetchFailure()
}

// Service はユーザー設定に基づくニュース取得のサービス層。
type Service struct {
	users   repository.UserRepository
	client  HeadlinesFetcher
	metrics FetchMetricsRecorder // nilの場合は記録しない
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(users repository.UserRepository, client HeadlinesFetcher, metrics FetchMetricsRecorder) *Service {
	return &Service{
		users:   users,
		client:  client,
		metrics: metrics,
	}
}

// HeadlinesForUser は指定ユーザーの保存済み設定でトップヘッドラインを取得する。
// 設定が未保存の場合はデフォルト（technology/en）を使う。
// プロバイダ呼び出しの失敗はUpstreamFailureとして返し、プロバイダ固有の
// エラー詳細は含めない。
func (s *Service) HeadlinesForUser(ctx context.Context, userID int64) ([]Article, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}

	category := user.Preferences.Categories
	if category == "" {
		category = defaultCategory
	}
	language := user.Preferences.Language
	if language == "" {
		language = defaultLanguage
	}

	articles, err := s.client.TopHeadlines(ctx, category, language)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordNewsFetchFailure()
		}
		// 詳細はクライアントのログに残っている。呼び出し元へは汎用エラーのみ返す。
		slog.Error("failed to fetch headlines",
			slog.Int64("user_id", userID),
			slog.String("category", category),
			slog.String("language", language),
		)
		return nil, model.NewNewsFetchError()
	}

	if s.metrics != nil {
		s.metrics.RecordNewsFetchSuccess()
	}

	return articles, nil
}
