package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_fetches_total", Help: "Dashboard section loads by kind",
	}, []string{"kind"})
	mFetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_fetch_errors_total", Help: "Dashboard section loads that rendered empty after an error",
	}, []string{"kind"})
	mStale = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_stale_completions_total", Help: "Completions discarded because a newer load superseded them",
	}, []string{"kind"})
	mFetchDur = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "dashboard_fetch_duration_seconds", Help: "Dashboard section load duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)

// ObserveStale counts a completion discarded by the session.
func ObserveStale(k FetchKind) { mStale.WithLabelValues(k.String()).Inc() }
