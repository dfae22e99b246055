package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/hitoshi/newsdeck/internal/model"
)

// uniqueViolation はPostgreSQLの一意制約違反のエラーコード。
const uniqueViolation = "23505"

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
// IDの採番はBIGSERIALに委ねる。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// Create はユーザーを作成する。
// メールアドレスの一意制約に違反した場合はErrEmailTakenを返す。
func (r *PostgresUserRepo) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	user := &model.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		email, passwordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, categories, language, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	))
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, categories, language, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	))
}

// ReplacePreferences は指定ユーザーの設定を全体置換する。
// ユーザーが見つからない場合はnilを返す。
func (r *PostgresUserRepo) ReplacePreferences(ctx context.Context, id int64, prefs model.Preferences) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users SET categories = $2, language = $3, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, email, password_hash, categories, language, created_at, updated_at`,
		id, prefs.Categories, prefs.Language,
	))
}

// scanUser は1行のユーザーレコードを読み取る。行がない場合はnilを返す。
func (r *PostgresUserRepo) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.Preferences.Categories, &user.Preferences.Language,
		&user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return user, nil
}
