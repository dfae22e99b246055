// Package repository はデータストアのインターフェースと実装を定義する。
// デフォルトはプロセス内メモリストアで、DATABASE_URLが設定されている場合のみ
// PostgreSQL実装に切り替わる。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/newsdeck/internal/model"
)

// ErrEmailTaken は登録済みメールアドレスで再登録しようとした場合のエラー。
// メールアドレスの一意性はストア自身が強制する。
var ErrEmailTaken = errors.New("email is already registered")

// UserRepository はユーザーレコードの永続化インターフェース。
// Identityレコードの書き込みはこのリポジトリのみが行い、他コンポーネントは
// IDによる参照のみを保持する。
type UserRepository interface {
	// Create はユーザーを作成し、次の連番IDを払い出す。
	// ID採番と追加は並行登録に対して不可分に行われる。
	// メールアドレスが登録済みの場合はErrEmailTakenを返す。
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)

	// FindByEmail は指定メールアドレスのユーザーを取得する。
	// 見つからない場合はnilを返す。メールアドレスは保存時のまま
	// 大文字小文字を区別して照合する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// ReplacePreferences は指定ユーザーの設定を全体置換する。
	// マージは行わず、省略されたフィールドは空になる。
	// ユーザーが見つからない場合はnilを返す。
	ReplacePreferences(ctx context.Context, id int64, prefs model.Preferences) (*model.User, error)
}

// TaskRepository はタスクレコードの永続化インターフェース。
type TaskRepository interface {
	// Create はタスクを作成し、次の連番IDを払い出す。
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	// List は全タスクをID昇順で返す。
	List(ctx context.Context) ([]*model.Task, error)

	// FindByID は指定IDのタスクを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Task, error)

	// Update は指定IDのタスクの全フィールドを更新する。
	// タスクが見つからない場合はnilを返す。
	Update(ctx context.Context, id int64, title, description string, completed bool) (*model.Task, error)

	// Delete は指定IDのタスクを削除し、削除したタスクを返す。
	// タスクが見つからない場合はnilを返す。
	Delete(ctx context.Context, id int64) (*model.Task, error)
}
