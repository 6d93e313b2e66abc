package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "finance",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
	authCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance",
			Subsystem: "auth",
			Name:      "cache_lookups_total",
			Help:      "Credential cache lookups by result.",
		},
		[]string{"result"},
	)
	authFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance",
			Subsystem: "auth",
			Name:      "failures_total",
			Help:      "Rejected requests by reason.",
		},
		[]string{"reason"},
	)
	authCacheEvictions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "finance",
			Subsystem: "auth",
			Name:      "cache_evictions_total",
			Help:      "Credential cache entries removed by the periodic sweep.",
		},
	)
	danglingReversals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance",
			Subsystem: "ledger",
			Name:      "dangling_reversals_total",
			Help:      "Balance reversals skipped because the account no longer exists.",
		},
		[]string{"operation"},
	)
	operatorActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finance",
			Subsystem: "operator",
			Name:      "actions_total",
			Help:      "Actions processed by the operator.",
		},
		[]string{"action", "result"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpDuration,
			authCacheLookups,
			authFailures,
			authCacheEvictions,
			danglingReversals,
			operatorActions,
		)
	})
}

func RecordHTTPRequest(operation string, status int, duration time.Duration) {
	RegisterMetrics()
	httpDuration.WithLabelValues(operation, strconv.Itoa(status)).Observe(duration.Seconds())
}

func RecordCacheLookup(hit bool) {
	RegisterMetrics()
	result := "miss"
	if hit {
		result = "hit"
	}
	authCacheLookups.WithLabelValues(result).Inc()
}

func RecordAuthFailure(reason string) {
	RegisterMetrics()
	authFailures.WithLabelValues(reason).Inc()
}

func RecordCacheEvictions(n int) {
	RegisterMetrics()
	authCacheEvictions.Add(float64(n))
}

func RecordDanglingReversal(operation string) {
	RegisterMetrics()
	danglingReversals.WithLabelValues(operation).Inc()
}

func RecordOperatorAction(action string, err error) {
	RegisterMetrics()
	result := "success"
	if err != nil {
		result = "error"
	}
	operatorActions.WithLabelValues(action, result).Inc()
}
