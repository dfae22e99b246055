package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/newsdeck/internal/middleware"
	"github.com/hitoshi/newsdeck/internal/model"
)

// TaskServiceInterface はタスクハンドラーが必要とするサービスインターフェース。
type TaskServiceInterface interface {
	Create(ctx context.Context, title, description string, completed bool) (*model.Task, error)
	List(ctx context.Context) ([]*model.Task, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	Update(ctx context.Context, id int64, title, description string, completed bool) (*model.Task, error)
	Delete(ctx context.Context, id int64) (*model.Task, error)
}

// TaskHandler はタスクCRUDのHTTPハンドラー。タスクは認証の対象外。
type TaskHandler struct {
	service TaskServiceInterface
}

// NewTaskHandler はTaskHandlerを生成する。
func NewTaskHandler(service TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

// createTaskRequest はタスク作成リクエストのボディ。completedは省略時false。
type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// updateTaskRequest はタスク更新リクエストのボディ。
// 更新は全フィールド必須のため、completedの省略を検出できるようポインタで受ける。
type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

// taskResponse はタスクのAPIレスポンス。
type taskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// CreateTask はタスクを作成する。
// POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewValidationError("Title and description are required"))
		return
	}

	task, err := h.service.Create(r.Context(), req.Title, req.Description, req.Completed)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

// ListTasks は全タスクをID昇順で返す。
// GET /tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		results[i] = toTaskResponse(task)
	}
	writeJSON(w, http.StatusOK, results)
}

// GetTask はタスク詳細を返す。
// GET /tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// UpdateTask はタスクの全フィールドを置き換える。
// PUT /tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewValidationError("Invalid data. Title, description, and completed(boolean) are required."))
		return
	}

	// 更新では completed の省略も検証エラーとする
	if req.Completed == nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewValidationError("Invalid data. Title, description, and completed(boolean) are required."))
		return
	}

	task, err := h.service.Update(r.Context(), id, req.Title, req.Description, *req.Completed)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// DeleteTask はタスクを削除し、削除したタスクを返す。
// DELETE /tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	task, err := h.service.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// taskIDFromRequest はパスパラメータからタスクIDを取り出す。
// 数値として解釈できないIDはタスク未存在として扱う。
func taskIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.WriteErrorResponse(w, http.StatusNotFound, model.NewTaskNotFoundError())
		return 0, false
	}
	return id, true
}

// toTaskResponse はmodel.TaskからAPIレスポンスに変換する。
func toTaskResponse(task *model.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}
