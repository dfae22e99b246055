// Package auth は認証サブシステムを提供する。
// パスワードハッシュ、JWTの発行・検証、登録・ログインのドメインロジックを含む。
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost はハッシュのコスト係数。全ハッシュで固定とし、リクエストごとの
// 変更は許可しない。
const bcryptCost = 10

// ErrEmptyPassword は空のパスワードをハッシュしようとした場合のエラー。
var ErrEmptyPassword = errors.New("password is empty")

// HashPassword は平文パスワードからソルト付きの一方向ダイジェストを生成する。
// ソルトは呼び出しごとに新しく生成されるため、同じ入力でも毎回異なる
// ダイジェストになる。
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword は平文パスワードとダイジェストの一致を検証する。
// 比較はbcrypt内部で一定時間で行われる。不一致や不正なダイジェストの
// 場合もfalseを返すのみで、panicしない。
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
