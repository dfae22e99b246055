// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// Codeはログ・可観測性のための内部識別子、Messageはクライアントへ返す文言。
// トークンの「不正」と「期限切れ」はCodeでは区別するが、Messageは同一にして
// 失敗理由を外部へ漏らさない。
type APIError struct {
	Code     string // エラーコード
	Message  string // クライアント向けエラーメッセージ
	Category string // カテゴリ: auth, validation, task, news, system
	Action   string // クライアント向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeTaskNotFound       = "TASK_NOT_FOUND"
	ErrCodeNewsFetchFailed    = "NEWS_FETCH_FAILED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewValidationError は入力検証エラーを生成する。
// messageはそのままクライアントへ返されるため、入力値そのものは含めない。
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  message,
		Category: "validation",
		Action:   "Check the request body and try again.",
	}
}

// NewInvalidCredentialsError は認証情報不一致エラーを生成する。
// メールアドレス未登録とパスワード不一致で同一のメッセージを返し、
// アカウントの存在を推測できないようにする。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid credentials",
		Category: "auth",
		Action:   "Check your email and password.",
	}
}

// NewEmailTakenError はメールアドレス重複エラーを生成する。
func NewEmailTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  "Email is already registered",
		Category: "validation",
		Action:   "Use a different email address or log in.",
	}
}

// NewUnauthenticatedError はトークン未提示エラーを生成する。
// トークンが提示されたうえで拒否された場合とは区別される。
func NewUnauthenticatedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthenticated,
		Message:  "Access denied. No token provided.",
		Category: "auth",
		Action:   "Log in and send the token in the Authorization header.",
	}
}

// NewInvalidTokenError は署名検証に失敗したトークンのエラーを生成する。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidToken,
		Message:  "Invalid token",
		Category: "auth",
		Action:   "Log in again to obtain a new token.",
	}
}

// NewTokenExpiredError は期限切れトークンのエラーを生成する。
// Messageは署名不正時と同一にし、失敗理由の区別はCodeのみに残す。
func NewTokenExpiredError() *APIError {
	return &APIError{
		Code:     ErrCodeTokenExpired,
		Message:  "Invalid token",
		Category: "auth",
		Action:   "Log in again to obtain a new token.",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "User not found",
		Category: "auth",
		Action:   "Log in again.",
	}
}

// NewTaskNotFoundError はタスク未検出エラーを生成する。
func NewTaskNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeTaskNotFound,
		Message:  "Task not found",
		Category: "task",
		Action:   "Check the task ID.",
	}
}

// NewNewsFetchError はニュース取得失敗エラーを生成する。
// プロバイダ固有のエラー詳細はログのみに残し、クライアントへは返さない。
func NewNewsFetchError() *APIError {
	return &APIError{
		Code:     ErrCodeNewsFetchFailed,
		Message:  "Failed to fetch news",
		Category: "news",
		Action:   "Try again later.",
	}
}

// NewInternalError は内部エラーを生成する。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "Internal server error",
		Category: "system",
		Action:   "Try again later.",
	}
}
