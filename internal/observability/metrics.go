package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersRegistered counts successful user registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_users_registered_total",
		Help: "Total number of users registered",
	})

	// UsersDestroyed counts user destroy operations, including their cascades.
	UsersDestroyed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_users_destroyed_total",
		Help: "Total number of users destroyed (with cascaded children)",
	})

	// FollowOperations counts follow-graph mutations by action.
	FollowOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microblog_follow_operations_total",
		Help: "Total number of follow and unfollow operations",
	}, []string{"action"})

	// MicropostsCreated counts successfully persisted microposts.
	MicropostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_microposts_created_total",
		Help: "Total number of microposts created",
	})

	// FeedQueryLatency records feed computation latency.
	FeedQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "microblog_feed_query_latency_seconds",
		Help:    "Feed query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "microblog_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microblog_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
