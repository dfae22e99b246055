package news

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/newsdeck/internal/model"
	"github.com/hitoshi/newsdeck/internal/repository"
)

// --- モック定義 ---

type mockFetcher struct {
	topHeadlinesFn func(ctx context.Context, category, language string) ([]Article, error)
}

func (m *mockFetcher) TopHeadlines(ctx context.Context, category, language string) ([]Article, error) {
	if m.topHeadlinesFn != nil {
		return m.topHeadlinesFn(ctx, category, language)
	}
	return nil, nil
}

type mockFetchMetrics struct {
	successes int
	failures  int
}

func (m *mockFetchMetrics) RecordNewsFetchSuccess() { m.successes++ }
func (m *mockFetchMetrics) RecordNewsFetchFailure() { m.failures++ }

func newUserRepoWithUser(t *testing.T, prefs model.Preferences) (*repository.MemoryUserRepo, int64) {
	t.Helper()
	repo := repository.NewMemoryUserRepo()
	created, err := repo.Create(context.Background(), "a@x.com", "hash")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !prefs.IsEmpty() {
		if _, err := repo.ReplacePreferences(context.Background(), created.ID, prefs); err != nil {
			t.Fatalf("ReplacePreferences error: %v", err)
		}
	}
	return repo, created.ID
}

// --- テスト ---

func TestService_HeadlinesForUser_UsesStoredPreferences(t *testing.T) {
	repo, userID := newUserRepoWithUser(t, model.Preferences{Categories: "sports", Language: "fr"})

	var gotCategory, gotLanguage string
	fetcher := &mockFetcher{
		topHeadlinesFn: func(ctx context.Context, category, language string) ([]Article, error) {
			gotCategory = category
			gotLanguage = language
			return []Article{{Title: "match report"}}, nil
		},
	}
	metrics := &mockFetchMetrics{}
	svc := NewService(repo, fetcher, metrics)

	articles, err := svc.HeadlinesForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("HeadlinesForUser error: %v", err)
	}

	if gotCategory != "sports" || gotLanguage != "fr" {
		t.Errorf("query = %q/%q, want sports/fr", gotCategory, gotLanguage)
	}
	if len(articles) != 1 {
		t.Errorf("len = %d, want 1", len(articles))
	}
	if metrics.successes != 1 || metrics.failures != 0 {
		t.Errorf("metrics = %+v", metrics)
	}
}

func TestService_HeadlinesForUser_DefaultsWhenUnset(t *testing.T) {
	repo, userID := newUserRepoWithUser(t, model.Preferences{})

	var gotCategory, gotLanguage string
	fetcher := &mockFetcher{
		topHeadlinesFn: func(ctx context.Context, category, language string) ([]Article, error) {
			gotCategory = category
			gotLanguage = language
			return nil, nil
		},
	}
	svc := NewService(repo, fetcher, nil)

	if _, err := svc.HeadlinesForUser(context.Background(), userID); err != nil {
		t.Fatalf("HeadlinesForUser error: %v", err)
	}

	if gotCategory != "technology" {
		t.Errorf("category = %q, want technology", gotCategory)
	}
	if gotLanguage != "en" {
		t.Errorf("language = %q, want en", gotLanguage)
	}
}

func TestService_HeadlinesForUser_ProviderFailure_ReturnsGenericError(t *testing.T) {
	repo, userID := newUserRepoWithUser(t, model.Preferences{})

	fetcher := &mockFetcher{
		topHeadlinesFn: func(ctx context.Context, category, language string) ([]Article, error) {
			return nil, errors.New("provider returned status 500: secret internal detail")
		},
	}
	metrics := &mockFetchMetrics{}
	svc := NewService(repo, fetcher, metrics)

	_, err := svc.HeadlinesForUser(context.Background(), userID)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeNewsFetchFailed {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeNewsFetchFailed)
	}

	// プロバイダのエラー詳細がクライアント向けメッセージへ漏れないこと
	if apiErr.Message != "Failed to fetch news" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Failed to fetch news")
	}
	if metrics.failures != 1 {
		t.Errorf("failures = %d, want 1", metrics.failures)
	}
}

func TestService_HeadlinesForUser_UnknownUser(t *testing.T) {
	svc := NewService(repository.NewMemoryUserRepo(), &mockFetcher{}, nil)

	_, err := svc.HeadlinesForUser(context.Background(), 999)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeUserNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeUserNotFound)
	}
}
