package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hitoshi/newsdeck/internal/model"
)

// MemoryUserRepo はプロセス内メモリのユーザーリポジトリ。
// 全操作をRWMutexで保護し、ID採番と追加を1つのクリティカルセクションで
// 行うことで並行登録時のID重複を防ぐ。プロセス終了でデータは消える。
type MemoryUserRepo struct {
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

// NewMemoryUserRepo はMemoryUserRepoを生成する。
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

// Create はユーザーを作成し、次の連番IDを払い出す。
// メールアドレスが登録済みの場合はErrEmailTakenを返す。
func (r *MemoryUserRepo) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	now := time.Now()
	user := &model.User{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[user.ID] = user
	r.nextID++

	return copyUser(user), nil
}

// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

// ReplacePreferences は指定ユーザーの設定を全体置換する。
// ユーザーが見つからない場合はnilを返す。
func (r *MemoryUserRepo) ReplacePreferences(ctx context.Context, id int64, prefs model.Preferences) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	u.Preferences = prefs
	u.UpdatedAt = time.Now()

	return copyUser(u), nil
}

// copyUser はレコードのコピーを返す。
// 呼び出し元にストア内部への可変参照を渡さないための措置。
func copyUser(u *model.User) *model.User {
	c := *u
	return &c
}
