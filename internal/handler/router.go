package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/newsdeck/internal/metrics"
	"github.com/hitoshi/newsdeck/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	CORSAllowedOrigin string
	TokenVerifier     middleware.TokenVerifier
	MetricsRecorder   middleware.HTTPMetricsRecorder // nilの場合はメトリクスを記録しない

	// Prometheusスクレイプ用。nilの場合 /metrics は公開しない
	Gatherer prometheus.Gatherer

	// サービス
	AuthService AuthServiceInterface
	AuthMetrics AuthMetricsRecorder
	UserService UserServiceInterface
	NewsService NewsServiceInterface
	TaskService TaskServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → RequestID → SecurityHeaders → CORS → Logging → Metrics
//
// トークン検証（AuthMiddleware）は /preferences と /news のグループにのみ適用する。
// タスクCRUDと登録・ログインは認証なしで到達できる。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthMetrics)
	userHandler := NewUserHandler(deps.UserService)
	newsHandler := NewNewsHandler(deps.NewsService)
	taskHandler := NewTaskHandler(deps.TaskService)

	// --- 認証不要のルート ---

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", taskHandler.CreateTask)
		r.Get("/", taskHandler.ListTasks)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTask)
			r.Put("/", taskHandler.UpdateTask)
			r.Delete("/", taskHandler.DeleteTask)
		})
	})

	r.Get("/health", healthCheck)

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- トークン必須のルート ---

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))

		r.Get("/preferences", userHandler.GetPreferences)
		r.Put("/preferences", userHandler.UpdatePreferences)
		r.Get("/news", newsHandler.GetNews)
	})

	return r
}

// healthCheck は死活監視用エンドポイント。
// GET /health
func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
