// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
// HTTPミドルウェアとニュースサービスの両方から利用する。
type Collector struct {
	httpStatus       *prometheus.CounterVec
	requestLatency   prometheus.Histogram
	newsFetchSuccess prometheus.Counter
	newsFetchFail    prometheus.Counter
	usersRegistered  prometheus.Counter
	loginFail        prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdeck_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsdeck_request_latency_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		newsFetchSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "newsdeck_news_fetch_success_total",
			Help: "ニュースプロバイダ取得成功の合計数",
		}),
		newsFetchFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "newsdeck_news_fetch_fail_total",
			Help: "ニュースプロバイダ取得失敗の合計数",
		}),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "newsdeck_users_registered_total",
			Help: "登録されたユーザーの合計数",
		}),
		loginFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "newsdeck_login_fail_total",
			Help: "ログイン失敗の合計数",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestLatency,
		c.newsFetchSuccess,
		c.newsFetchFail,
		c.usersRegistered,
		c.loginFail,
	)

	return c
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// RecordNewsFetchSuccess はニュース取得成功を記録する。
func (c *Collector) RecordNewsFetchSuccess() {
	c.newsFetchSuccess.Inc()
}

// RecordNewsFetchFailure はニュース取得失敗を記録する。
func (c *Collector) RecordNewsFetchFailure() {
	c.newsFetchFail.Inc()
}

// RecordUserRegistered はユーザー登録を記録する。
func (c *Collector) RecordUserRegistered() {
	c.usersRegistered.Inc()
}

// RecordLoginFailure はログイン失敗を記録する。
func (c *Collector) RecordLoginFailure() {
	c.loginFail.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
