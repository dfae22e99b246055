package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/newsdeck/internal/middleware"
	"github.com/hitoshi/newsdeck/internal/model"
)

// UserServiceInterface は設定ハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// GetPreferences はユーザーのニュース設定を取得する。未設定の場合は空を返す。
	GetPreferences(ctx context.Context, userID int64) (model.Preferences, error)
	// UpdatePreferences は設定を丸ごと置き換える。
	UpdatePreferences(ctx context.Context, userID int64, categories, language string) (model.Preferences, error)
}

// UserHandler はニュース設定のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// updatePreferencesRequest は設定更新リクエストのボディ。
// 送信されなかったフィールドは空として扱い、既存値を引き継がない。
type updatePreferencesRequest struct {
	Categories string `json:"categories"`
	Language   string `json:"language"`
}

// preferencesResponse は設定のAPIレスポンス。
// 未設定のフィールドは省略し、何も設定がなければ {} になる。
type preferencesResponse struct {
	Categories string `json:"categories,omitempty"`
	Language   string `json:"language,omitempty"`
}

// GetPreferences は現在の設定を返す。
// GET /preferences
func (h *UserHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	prefs, err := h.service.GetPreferences(r.Context(), claims.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreferencesResponse(prefs))
}

// UpdatePreferences は設定を置き換える。
// PUT /preferences
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	var req updatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewValidationError("Invalid request body"))
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), claims.UserID, req.Categories, req.Language)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Preferences updated",
		"preferences": toPreferencesResponse(prefs),
	})
}

// toPreferencesResponse はmodel.PreferencesからAPIレスポンスに変換する。
func toPreferencesResponse(prefs model.Preferences) preferencesResponse {
	return preferencesResponse{
		Categories: prefs.Categories,
		Language:   prefs.Language,
	}
}
