package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal *prometheus.CounterVec
	blogEventsTotal   *prometheus.CounterVec
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bloglist",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the bloglist API.",
		}, []string{"method", "path", "status"})
		blogEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bloglist",
			Name:      "blog_events_total",
			Help:      "Blog writes seen by the event worker, by kind.",
		}, []string{"kind"})
	})
}

func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func IncBlogEvent(kind string) {
	if blogEventsTotal == nil {
		return
	}
	blogEventsTotal.WithLabelValues(kind).Inc()
}
