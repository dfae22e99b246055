package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hitoshi/newsdeck/internal/model"
	"github.com/hitoshi/newsdeck/internal/repository"
)

// Service は登録・ログインのドメインロジックを提供する。
// Credential Store（UserRepository）とトークン発行を束ねる。
type Service struct {
	users  repository.UserRepository
	issuer *TokenIssuer
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(users repository.UserRepository, issuer *TokenIssuer) *Service {
	return &Service{
		users:  users,
		issuer: issuer,
	}
}

// Register は新規ユーザーを登録する。
// メールアドレスとパスワードの形状チェックを行い、パスワードはハッシュ化して
// 保存する。メールアドレスの重複は拒否する。
func (s *Service) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, model.NewValidationError("Email and password are required")
	}
	if len(password) < 6 {
		return nil, model.NewValidationError("Password must be at least 6 characters")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, hash)
	if errors.Is(err, repository.ErrEmailTaken) {
		return nil, model.NewEmailTakenError()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login は認証情報を検証し、成功時にベアラートークンを発行する。
// メールアドレス未登録とパスワード不一致は区別せず、同一のエラーを返す。
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return "", model.NewInvalidCredentialsError()
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", model.NewInvalidCredentialsError()
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
