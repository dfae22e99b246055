package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/newsdeck/internal/middleware"
	"github.com/hitoshi/newsdeck/internal/model"
	"github.com/hitoshi/newsdeck/internal/news"
)

// NewsServiceInterface はニュースハンドラーが必要とするサービスインターフェース。
type NewsServiceInterface interface {
	// HeadlinesForUser はユーザーの設定に応じたトップ記事を取得する。
	HeadlinesForUser(ctx context.Context, userID int64) ([]news.Article, error)
}

// NewsHandler はニュース取得のHTTPハンドラー。
type NewsHandler struct {
	service NewsServiceInterface
}

// NewNewsHandler はNewsHandlerを生成する。
func NewNewsHandler(service NewsServiceInterface) *NewsHandler {
	return &NewsHandler{service: service}
}

// GetNews はユーザーの設定でスコープした記事一覧を返す。
// GET /news
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	articles, err := h.service.HeadlinesForUser(r.Context(), claims.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// 記事0件でも null ではなく [] を返す
	if articles == nil {
		articles = []news.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}
