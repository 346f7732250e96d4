package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridrr_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EngagementEvents counts recorded engagement events by kind and outcome.
	EngagementEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridrr_engagement_events_total",
		Help: "Total number of engagement events by kind and outcome",
	}, []string{"kind", "outcome"})

	// VerificationSweepDuration records how long verification sweeps take.
	VerificationSweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridrr_verification_sweep_duration_seconds",
		Help:    "Duration of verification threshold sweeps in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// VerificationFlagged counts users flagged by the verification sweep.
	VerificationFlagged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridrr_verification_flagged_total",
		Help: "Total number of users newly flagged for verification",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
