// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hitoshi/newsdeck/internal/auth"
	"github.com/hitoshi/newsdeck/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// claimsContextKey はリクエストコンテキストに検証済みClaimsを格納するためのキー。
var claimsContextKey = contextKey("claims")

// TokenVerifier はトークン検証に必要なインターフェース。
// auth.TokenIssuerの部分集合として定義する。
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// NewAuthMiddleware はAuthorizationヘッダーのベアラートークンを検証する
// ミドルウェアを返す。
//
// トークン未提示は401、提示されたが署名不正または期限切れのトークンは403を
// 返す。不正と期限切れはクライアントへは同一レスポンスだが、ログには
// 区別して記録する。
//
// 検証成功時は検証済みClaims（id, email）をリクエストコンテキストに注入する。
// ここではCredential Storeへの問い合わせは行わない。完全なユーザー情報が
// 必要なハンドラーは、注入されたIDで自ら取得する。
func NewAuthMiddleware(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Authorizationヘッダーからベアラートークンを取り出す
			token := extractBearerToken(r)
			if token == "" {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
				return
			}

			// 2. 署名と有効期限を検証する
			claims, err := verifier.Verify(token)
			if err != nil {
				apiErr := model.NewInvalidTokenError()
				if errors.Is(err, auth.ErrTokenExpired) {
					apiErr = model.NewTokenExpiredError()
				}
				slog.Warn("token rejected",
					slog.String("code", apiErr.Code),
					slog.String("path", r.URL.Path),
				)
				WriteErrorResponse(w, http.StatusForbidden, apiErr)
				return
			}

			// 3. 検証済みClaimsをコンテキストに注入する
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken はAuthorizationヘッダーから`Bearer <token>`形式の
// トークンを取り出す。ヘッダーが無い、またはスキームが異なる場合は空文字列を返す。
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// ClaimsFromContext はリクエストコンテキストから検証済みClaimsを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func ClaimsFromContext(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("claims not found in context")
	}
	return claims, nil
}

// ContextWithClaims はコンテキストにClaimsを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}
