package model

import "time"

// Task はタスクリストの1項目を表す。
// タスクは認証とは独立したコラボレータであり、IDは登録順の連番。
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
