package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/newsdeck/internal/repository"
	"github.com/hitoshi/newsdeck/internal/task"
)

// newTaskTestRouter はメモリリポジトリと実サービスでタスクルートを構成する。
// パスパラメータの解決にchiのルーティングが必要なため、ハンドラー単体ではなく
// ルーター越しにテストする。
func newTaskTestRouter() http.Handler {
	svc := task.NewService(repository.NewMemoryTaskRepo())
	h := NewTaskHandler(svc)

	r := chi.NewRouter()
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTask)
			r.Put("/", h.UpdateTask)
			r.Delete("/", h.DeleteTask)
		})
	})
	return r
}

func doTaskRequest(t *testing.T, router http.Handler, method, target, body string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

// TestTaskHandler_Create_Success はタスク作成の正常系を検証する。
func TestTaskHandler_Create_Success(t *testing.T) {
	router := newTaskTestRouter()

	resp := doTaskRequest(t, router, http.MethodPost, "/tasks",
		`{"title":"buy milk","description":"2 liters"}`)

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	body := decodeBody(t, resp)
	if body["id"] != float64(1) {
		t.Errorf("id = %v, want 1", body["id"])
	}
	if body["title"] != "buy milk" {
		t.Errorf("title = %q, want %q", body["title"], "buy milk")
	}
	// completed省略時はfalse
	if body["completed"] != false {
		t.Errorf("completed = %v, want false", body["completed"])
	}
}

// TestTaskHandler_Create_MissingFields は必須フィールド欠落が400で返ることを検証する。
func TestTaskHandler_Create_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"description":"x"}`},
		{name: "missing description", body: `{"title":"x"}`},
		{name: "empty body", body: `{}`},
	}

	router := newTaskTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doTaskRequest(t, router, http.MethodPost, "/tasks", tt.body)

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
			body := decodeBody(t, resp)
			if body["error"] != "Title and description are required" {
				t.Errorf("error = %q, want %q", body["error"], "Title and description are required")
			}
		})
	}
}

// TestTaskHandler_List_ReturnsTasksInIDOrder は一覧がID昇順で返ることを検証する。
func TestTaskHandler_List_ReturnsTasksInIDOrder(t *testing.T) {
	router := newTaskTestRouter()

	doTaskRequest(t, router, http.MethodPost, "/tasks", `{"title":"first","description":"a"}`)
	doTaskRequest(t, router, http.MethodPost, "/tasks", `{"title":"second","description":"b"}`)

	resp := doTaskRequest(t, router, http.MethodGet, "/tasks", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var tasks []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
	if tasks[0]["title"] != "first" || tasks[1]["title"] != "second" {
		t.Errorf("unexpected order: %v", tasks)
	}
}

// TestTaskHandler_Get_NotFound は未存在・非数値IDが404と固定メッセージで返ることを検証する。
func TestTaskHandler_Get_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown id", target: "/tasks/999"},
		{name: "non-numeric id", target: "/tasks/abc"},
	}

	router := newTaskTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doTaskRequest(t, router, http.MethodGet, tt.target, "")

			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
			}
			body := decodeBody(t, resp)
			if body["error"] != "Task not found" {
				t.Errorf("error = %q, want %q", body["error"], "Task not found")
			}
		})
	}
}

// TestTaskHandler_Update_ReplacesAllFields は更新が全フィールドを置き換えることを検証する。
func TestTaskHandler_Update_ReplacesAllFields(t *testing.T) {
	router := newTaskTestRouter()

	doTaskRequest(t, router, http.MethodPost, "/tasks", `{"title":"old","description":"old desc"}`)

	resp := doTaskRequest(t, router, http.MethodPut, "/tasks/1",
		`{"title":"new","description":"new desc","completed":true}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body := decodeBody(t, resp)
	if body["title"] != "new" {
		t.Errorf("title = %q, want %q", body["title"], "new")
	}
	if body["completed"] != true {
		t.Errorf("completed = %v, want true", body["completed"])
	}
}

// TestTaskHandler_Update_MissingCompleted はcompleted省略が400で返ることを検証する。
func TestTaskHandler_Update_MissingCompleted(t *testing.T) {
	router := newTaskTestRouter()

	doTaskRequest(t, router, http.MethodPost, "/tasks", `{"title":"a","description":"b"}`)

	resp := doTaskRequest(t, router, http.MethodPut, "/tasks/1",
		`{"title":"a","description":"b"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	body := decodeBody(t, resp)
	want := "Invalid data. Title, description, and completed(boolean) are required."
	if body["error"] != want {
		t.Errorf("error = %q, want %q", body["error"], want)
	}
}

// TestTaskHandler_Update_NotFound は未存在タスクの更新が404で返ることを検証する。
func TestTaskHandler_Update_NotFound(t *testing.T) {
	router := newTaskTestRouter()

	resp := doTaskRequest(t, router, http.MethodPut, "/tasks/42",
		`{"title":"a","description":"b","completed":false}`)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

// TestTaskHandler_Delete_ReturnsDeletedTask は削除が削除済みタスクを返し、2度目は404になることを検証する。
func TestTaskHandler_Delete_ReturnsDeletedTask(t *testing.T) {
	router := newTaskTestRouter()

	doTaskRequest(t, router, http.MethodPost, "/tasks", `{"title":"to delete","description":"x"}`)

	resp := doTaskRequest(t, router, http.MethodDelete, "/tasks/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body := decodeBody(t, resp)
	if body["title"] != "to delete" {
		t.Errorf("title = %q, want %q", body["title"], "to delete")
	}

	// 同じIDをもう一度削除すると404
	resp = doTaskRequest(t, router, http.MethodDelete, "/tasks/1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
