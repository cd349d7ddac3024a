package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Construction Metrics
var (
	BuildRequestsQueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildRequestsQueued,
			Help: HelpTextBuildRequestsQueued,
		},
		[]string{LabelDesign, LabelAction},
	)

	BuildRequestsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildRequestsCancelled,
			Help: HelpTextBuildRequestsCancelled,
		},
		[]string{LabelDesign},
	)

	BuildRequestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildRequestsCompleted,
			Help: HelpTextBuildRequestsCompleted,
		},
		[]string{LabelDesign, LabelAction},
	)

	BuildRequestsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBuildRequestsActive,
			Help: HelpTextBuildRequestsActive,
		},
	)

	ViewsAssembled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameViewsAssembled,
			Help: HelpTextViewsAssembled,
		},
	)

	ViewCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameViewCacheLookups,
			Help: HelpTextViewCacheLookups,
		},
		[]string{LabelResult},
	)

	ViewEntriesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameViewEntriesSkipped,
			Help: HelpTextViewEntriesSkipped,
		},
	)
)
