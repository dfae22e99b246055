// Package task はタスクリスト管理のドメインロジックを提供する。
// タスクは認証とは独立しており、Authorization Gateの保護対象外。
package task

import (
	"context"
	"fmt"

	"github.com/hitoshi/newsdeck/internal/model"
	"github.com/hitoshi/newsdeck/internal/repository"
)

// Service はタスクCRUDのサービス層。
// ビジネスロジックは持たず、必須フィールドの検証のみを行う。
type Service struct {
	tasks repository.TaskRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(tasks repository.TaskRepository) *Service {
	return &Service{tasks: tasks}
}

// Create は新規タスクを作成する。titleとdescriptionは必須。
// completedの省略はfalseとして扱う。
func (s *Service) Create(ctx context.Context, title, description string, completed bool) (*model.Task, error) {
	if title == "" || description == "" {
		return nil, model.NewValidationError("Title and description are required")
	}

	created, err := s.tasks.Create(ctx, &model.Task{
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// List は全タスクをID昇順で返す。
func (s *Service) List(ctx context.Context) ([]*model.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get は指定IDのタスクを取得する。
func (s *Service) Get(ctx context.Context, id int64) (*model.Task, error) {
	found, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if found == nil {
		return nil, model.NewTaskNotFoundError()
	}
	return found, nil
}

// Update は指定IDのタスクの全フィールドを置き換える。
// title、descriptionは必須（completedの必須判定はリクエスト解析側で行う）。
func (s *Service) Update(ctx context.Context, id int64, title, description string, completed bool) (*model.Task, error) {
	if title == "" || description == "" {
		return nil, model.NewValidationError("Invalid data. Title, description, and completed(boolean) are required.")
	}

	updated, err := s.tasks.Update(ctx, id, title, description, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if updated == nil {
		return nil, model.NewTaskNotFoundError()
	}

	return updated, nil
}

// Delete は指定IDのタスクを削除し、削除したタスクを返す。
func (s *Service) Delete(ctx context.Context, id int64) (*model.Task, error) {
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if deleted == nil {
		return nil, model.NewTaskNotFoundError()
	}

	return deleted, nil
}
