package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hitoshi/newsdeck/internal/model"
)

// トークン検証の失敗種別。
// クライアントへはどちらも同一の「Invalid token」として返すが、
// ログ・メトリクスのために内部では区別する。
var (
	// ErrTokenInvalid は署名検証に失敗した（改ざんを含む）場合のエラー。
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired は署名は正当だが有効期限を過ぎている場合のエラー。
	ErrTokenExpired = errors.New("token expired")
)

// Claims はトークンに埋め込む認証済みアイデンティティの主張を表す。
// 発行時刻と有効期限はRegisteredClaimsで保持する。
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer は対称鍵（HS256）署名の時限付きベアラートークンを発行・検証する。
// 署名シークレットはプロセス共通で、ローテーション機構は持たない。
// シークレットを変更すると、旧シークレットで発行済みのトークンはすべて
// 検証不能になる。
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // テストで時刻を差し替えるためのフック
}

// NewTokenIssuer はTokenIssuerを生成する。
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue は指定ユーザーの{id, email}を埋め込んだトークンを発行する。
// 発行時刻は現在時刻、有効期限は発行時刻+TTL。
func (i *TokenIssuer) Issue(user *model.User) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、埋め込まれたClaimsを返す。
// 署名検証を先に判定し、署名が不正な場合は有効期限を見ずにErrTokenInvalidを
// 返す。署名が正当で期限切れの場合のみErrTokenExpiredを返す。
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))

	if err != nil {
		// 署名不正が最優先。期限切れはその後に判定する。
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrTokenInvalid
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
