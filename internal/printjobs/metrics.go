package printjobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "badgematic_print_jobs_started_total",
		Help: "Number of badge print jobs enqueued.",
	})
	jobsSucceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "badgematic_print_jobs_succeeded_total",
		Help: "Number of badge print jobs that completed successfully.",
	})
	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "badgematic_print_jobs_failed_total",
		Help: "Number of badge print jobs that ended in an error.",
	})
	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "badgematic_print_job_duration_seconds",
		Help:    "Wall-clock duration of the badge print pipeline.",
		Buckets: prometheus.DefBuckets,
	})
)
