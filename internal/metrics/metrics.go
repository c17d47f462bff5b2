package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskapi_tasks_created_total",
		Help: "Number of tasks created over the API.",
	})

	TasksDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskapi_tasks_deleted_total",
		Help: "Number of tasks deleted over the API.",
	})

	TasksOverdue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "taskapi_tasks_overdue",
		Help: "Pending tasks whose deadline has passed, as of the last scan.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskapi_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "path", "code"})
)

// Middleware считает запросы по шаблону роута, не по сырому URL,
// чтобы не плодить метки на каждый id.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
	})
}
