package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/newsdeck/internal/middleware"
	"github.com/hitoshi/newsdeck/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Register は新規ユーザーを登録する。
	Register(ctx context.Context, email, password string) (*model.User, error)
	// Login は資格情報を検証し署名付きトークンを発行する。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthMetricsRecorder は認証イベントのメトリクス記録インターフェース。
type AuthMetricsRecorder interface {
	RecordUserRegistered()
	RecordLoginFailure()
}

// AuthHandler はユーザー登録・ログインのHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	metrics AuthMetricsRecorder // nilの場合は記録しない
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, metrics AuthMetricsRecorder) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: metrics,
	}
}

// credentialsRequest は登録・ログイン共通のリクエストボディ。
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register はユーザー登録を処理する。
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewValidationError("Email and password are required"))
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordUserRegistered()
	}
	slog.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// Login は資格情報を検証しトークンを返す。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewValidationError("Email and password are required"))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *model.APIError
		if h.metrics != nil && errors.As(err, &apiErr) && apiErr.Code == model.ErrCodeInvalidCredentials {
			h.metrics.RecordLoginFailure()
		}
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
	})
}
