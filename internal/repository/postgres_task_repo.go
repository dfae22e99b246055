package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/newsdeck/internal/model"
)

// PostgresTaskRepo はPostgreSQLを使用したタスクリポジトリ。
type PostgresTaskRepo struct {
	db *sql.DB
}

// NewPostgresTaskRepo はPostgresTaskRepoを生成する。
func NewPostgresTaskRepo(db *sql.DB) *PostgresTaskRepo {
	return &PostgresTaskRepo{db: db}
}

// Create はタスクを作成する。
func (r *PostgresTaskRepo) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	created := &model.Task{
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (title, description, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		task.Title, task.Description, task.Completed,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return created, nil
}

// List は全タスクをID昇順で返す。
func (r *PostgresTaskRepo) List(ctx context.Context) ([]*model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, completed, created_at, updated_at
		 FROM tasks ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*model.Task
	for rows.Next() {
		task := &model.Task{}
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &task.Completed,
			&task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// FindByID は指定IDのタスクを取得する。見つからない場合はnilを返す。
func (r *PostgresTaskRepo) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	return r.scanTask(r.db.QueryRowContext(ctx,
		`SELECT id, title, description, completed, created_at, updated_at
		 FROM tasks WHERE id = $1`,
		id,
	))
}

// Update は指定IDのタスクの全フィールドを更新する。見つからない場合はnilを返す。
func (r *PostgresTaskRepo) Update(ctx context.Context, id int64, title, description string, completed bool) (*model.Task, error) {
	return r.scanTask(r.db.QueryRowContext(ctx,
		`UPDATE tasks SET title = $2, description = $3, completed = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, title, description, completed, created_at, updated_at`,
		id, title, description, completed,
	))
}

// Delete は指定IDのタスクを削除し、削除したタスクを返す。見つからない場合はnilを返す。
func (r *PostgresTaskRepo) Delete(ctx context.Context, id int64) (*model.Task, error) {
	return r.scanTask(r.db.QueryRowContext(ctx,
		`DELETE FROM tasks WHERE id = $1
		 RETURNING id, title, description, completed, created_at, updated_at`,
		id,
	))
}

func (r *PostgresTaskRepo) scanTask(row *sql.Row) (*model.Task, error) {
	task := &model.Task{}
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Completed,
		&task.CreatedAt, &task.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	return task, nil
}
