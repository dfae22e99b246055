// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// IDは登録順に採番される連番。PasswordHashにはbcryptダイジェストのみを
// 保持し、平文パスワードは一切保存しない。
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Preferences  Preferences
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Preferences はユーザーごとのニュース取得設定を表す。
// 未設定の場合は両フィールドとも空文字列。更新は常に全体置換であり、
// 省略されたフィールドは前回値を引き継がずに空になる。
type Preferences struct {
	Categories string
	Language   string
}

// IsEmpty は設定が一度も保存されていない状態かどうかを返す。
func (p Preferences) IsEmpty() bool {
	return p.Categories == "" && p.Language == ""
}
