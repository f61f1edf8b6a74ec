package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tasknest", Name: "http_requests_total", Help: "Number of HTTP requests by method, path and status."},
		[]string{"method", "path", "status"},
	)
	CallableInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tasknest", Name: "callable_invocations_total", Help: "Number of callable invocations by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tasknest", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tasknest", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(CallableInvocations)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
