package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hitoshi/newsdeck/internal/model"
)

// MemoryTaskRepo はプロセス内メモリのタスクリポジトリ。
// ユーザーリポジトリと同様にRWMutexで保護し、連番IDを採番する。
type MemoryTaskRepo struct {
	mu     sync.RWMutex
	tasks  map[int64]*model.Task
	nextID int64
}

// NewMemoryTaskRepo はMemoryTaskRepoを生成する。
func NewMemoryTaskRepo() *MemoryTaskRepo {
	return &MemoryTaskRepo{
		tasks:  make(map[int64]*model.Task),
		nextID: 1,
	}
}

// Create はタスクを作成し、次の連番IDを払い出す。
func (r *MemoryTaskRepo) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	created := &model.Task{
		ID:          r.nextID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks[created.ID] = created
	r.nextID++

	return copyTask(created), nil
}

// List は全タスクをID昇順で返す。
func (r *MemoryTaskRepo) List(ctx context.Context) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, copyTask(t))
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

// FindByID は指定IDのタスクを取得する。見つからない場合はnilを返す。
func (r *MemoryTaskRepo) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return copyTask(t), nil
}

// Update は指定IDのタスクの全フィールドを更新する。見つからない場合はnilを返す。
func (r *MemoryTaskRepo) Update(ctx context.Context, id int64, title, description string, completed bool) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}

	t.Title = title
	t.Description = description
	t.Completed = completed
	t.UpdatedAt = time.Now()

	return copyTask(t), nil
}

// Delete は指定IDのタスクを削除し、削除したタスクを返す。見つからない場合はnilを返す。
func (r *MemoryTaskRepo) Delete(ctx context.Context, id int64) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	delete(r.tasks, id)

	return copyTask(t), nil
}

func copyTask(t *model.Task) *model.Task {
	c := *t
	return &c
}
