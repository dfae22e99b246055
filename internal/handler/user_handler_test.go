package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/newsdeck/internal/auth"
	"github.com/hitoshi/newsdeck/internal/middleware"
	"github.com/hitoshi/newsdeck/internal/model"
)

type mockUserService struct {
	getPreferencesFn    func(ctx context.Context, userID int64) (model.Preferences, error)
	updatePreferencesFn func(ctx context.Context, userID int64, categories, language string) (model.Preferences, error)
}

func (m *mockUserService) GetPreferences(ctx context.Context, userID int64) (model.Preferences, error) {
	if m.getPreferencesFn != nil {
		return m.getPreferencesFn(ctx, userID)
	}
	return model.Preferences{}, nil
}

func (m *mockUserService) UpdatePreferences(ctx context.Context, userID int64, categories, language string) (model.Preferences, error) {
	if m.updatePreferencesFn != nil {
		return m.updatePreferencesFn(ctx, userID, categories, language)
	}
	return model.Preferences{Categories: categories, Language: language}, nil
}

// requestWithClaims はトークン検証済みのリクエストを模したテスト用リクエストを返す。
func requestWithClaims(method, target string, body string, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	claims := &auth.Claims{UserID: userID, Email: "a@x.com"}
	return req.WithContext(middleware.ContextWithClaims(req.Context(), claims))
}

// TestUserHandler_GetPreferences_EmptyRendersEmptyObject は未設定の設定が {} で返ることを検証する。
func TestUserHandler_GetPreferences_EmptyRendersEmptyObject(t *testing.T) {
	h := NewUserHandler(&mockUserService{})

	req := requestWithClaims(http.MethodGet, "/preferences", "", 1)
	w := httptest.NewRecorder()

	h.GetPreferences(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if got := strings.TrimSpace(w.Body.String()); got != "{}" {
		t.Errorf("body = %q, want %q", got, "{}")
	}
}

// TestUserHandler_GetPreferences_ReturnsStoredValues は保存済みの設定が返ることを検証する。
func TestUserHandler_GetPreferences_ReturnsStoredValues(t *testing.T) {
	svc := &mockUserService{
		getPreferencesFn: func(ctx context.Context, userID int64) (model.Preferences, error) {
			if userID != 7 {
				t.Errorf("userID = %d, want 7", userID)
			}
			return model.Preferences{Categories: "sports", Language: "fr"}, nil
		},
	}
	h := NewUserHandler(svc)

	req := requestWithClaims(http.MethodGet, "/preferences", "", 7)
	w := httptest.NewRecorder()

	h.GetPreferences(w, req)

	body := decodeBody(t, w.Result())
	if body["categories"] != "sports" {
		t.Errorf("categories = %q, want %q", body["categories"], "sports")
	}
	if body["language"] != "fr" {
		t.Errorf("language = %q, want %q", body["language"], "fr")
	}
}

// TestUserHandler_GetPreferences_NoClaims はトークン検証を通っていないリクエストが401で拒否されることを検証する。
func TestUserHandler_GetPreferences_NoClaims(t *testing.T) {
	h := NewUserHandler(&mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	w := httptest.NewRecorder()

	h.GetPreferences(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

// TestUserHandler_UpdatePreferences_Success は更新成功時のレスポンス形式を検証する。
func TestUserHandler_UpdatePreferences_Success(t *testing.T) {
	var gotCategories, gotLanguage string
	svc := &mockUserService{
		updatePreferencesFn: func(ctx context.Context, userID int64, categories, language string) (model.Preferences, error) {
			gotCategories = categories
			gotLanguage = language
			return model.Preferences{Categories: categories, Language: language}, nil
		},
	}
	h := NewUserHandler(svc)

	req := requestWithClaims(http.MethodPut, "/preferences",
		`{"categories":"business","language":"de"}`, 1)
	w := httptest.NewRecorder()

	h.UpdatePreferences(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if gotCategories != "business" || gotLanguage != "de" {
		t.Errorf("service received %q/%q, want business/de", gotCategories, gotLanguage)
	}

	body := decodeBody(t, resp)
	if body["message"] != "Preferences updated" {
		t.Errorf("message = %q, want %q", body["message"], "Preferences updated")
	}
	prefs, ok := body["preferences"].(map[string]any)
	if !ok {
		t.Fatalf("preferences field missing or wrong type: %v", body["preferences"])
	}
	if prefs["categories"] != "business" {
		t.Errorf("preferences.categories = %q, want %q", prefs["categories"], "business")
	}
}

// TestUserHandler_UpdatePreferences_OmittedFieldCleared は送信されなかったフィールドが空で置き換わることを検証する。
func TestUserHandler_UpdatePreferences_OmittedFieldCleared(t *testing.T) {
	var gotLanguage string
	svc := &mockUserService{
		updatePreferencesFn: func(ctx context.Context, userID int64, categories, language string) (model.Preferences, error) {
			gotLanguage = language
			return model.Preferences{Categories: categories}, nil
		},
	}
	h := NewUserHandler(svc)

	// languageを送らない → 置き換えで空になる
	req := requestWithClaims(http.MethodPut, "/preferences", `{"categories":"science"}`, 1)
	w := httptest.NewRecorder()

	h.UpdatePreferences(w, req)

	if gotLanguage != "" {
		t.Errorf("language = %q, want empty", gotLanguage)
	}

	body := decodeBody(t, w.Result())
	prefs, ok := body["preferences"].(map[string]any)
	if !ok {
		t.Fatalf("preferences field missing: %v", body)
	}
	if _, exists := prefs["language"]; exists {
		t.Error("cleared language should be omitted from response")
	}
}
