// Package user はユーザー設定管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"

	"github.com/hitoshi/newsdeck/internal/model"
	"github.com/hitoshi/newsdeck/internal/repository"
)

// Service はユーザー設定の取得・更新のサービス層。
type Service struct {
	users repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// GetPreferences は指定ユーザーの設定を取得する。
// 一度も設定されていない場合は空のPreferencesを返す。
func (s *Service) GetPreferences(ctx context.Context, userID int64) (model.Preferences, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return model.Preferences{}, model.NewUserNotFoundError()
	}

	return user.Preferences, nil
}

// UpdatePreferences は指定ユーザーの設定を全体置換する。
// マージは行わない。リクエストで省略されたフィールドは空になる。
func (s *Service) UpdatePreferences(ctx context.Context, userID int64, categories, language string) (model.Preferences, error) {
	updated, err := s.users.ReplacePreferences(ctx, userID, model.Preferences{
		Categories: categories,
		Language:   language,
	})
	if err != nil {
		return model.Preferences{}, fmt.Errorf("failed to replace preferences: %w", err)
	}
	if updated == nil {
		return model.Preferences{}, model.NewUserNotFoundError()
	}

	return updated.Preferences, nil
}
