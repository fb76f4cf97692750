package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game API client metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAPIRequestsTotal,
			Help:      HelpTextAPIRequestsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameAPIRequestDuration,
			Help:      HelpTextAPIRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelOperation},
	)
)

// Battle metrics
var (
	RoundsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRoundsTotal,
			Help:      HelpTextRoundsTotal,
		},
	)

	BadgesAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameBadgesAwarded,
			Help:      HelpTextBadgesAwarded,
		},
		[]string{LabelTeam},
	)

	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameXPAwarded,
			Help:      HelpTextXPAwarded,
		},
		[]string{LabelTeam},
	)

	BossesDefeated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameBossesDefeated,
			Help:      HelpTextBossesDefeated,
		},
		[]string{LabelTeam},
	)

	BossesRemaining = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameBossesRemaining,
			Help:      HelpTextBossesRemaining,
		},
		[]string{LabelTeam},
	)

	OddsErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameOddsErrors,
			Help:      HelpTextOddsErrors,
		},
		[]string{LabelReason},
	)

	LogRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameLogRecordsTotal,
			Help:      HelpTextLogRecordsTotal,
		},
		[]string{LabelType},
	)
)
