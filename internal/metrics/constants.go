package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Construction metric names
const (
	MetricNameBuildRequestsQueued    = "build_requests_queued_total"
	MetricNameBuildRequestsCancelled = "build_requests_cancelled_total"
	MetricNameBuildRequestsCompleted = "build_requests_completed_total"
	MetricNameBuildRequestsActive    = "build_requests_active"
	MetricNameViewsAssembled         = "building_views_assembled_total"
	MetricNameViewCacheLookups       = "building_view_cache_lookups_total"
	MetricNameViewEntriesSkipped     = "building_view_entries_skipped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Construction metric help text
const (
	HelpTextBuildRequestsQueued    = "Total number of build requests queued"
	HelpTextBuildRequestsCancelled = "Total number of build requests cancelled"
	HelpTextBuildRequestsCompleted = "Total number of build requests completed"
	HelpTextBuildRequestsActive    = "Current number of active build requests in the empire"
	HelpTextViewsAssembled         = "Total number of building views assembled"
	HelpTextViewCacheLookups       = "Building view cache lookups by result"
	HelpTextViewEntriesSkipped     = "Buildings or requests skipped because their design is unknown"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelDesign = "design"
	LabelAction = "action"
	LabelResult = "result"
)

// Label values
const (
	ActionBuild   = "build"
	ActionUpgrade = "upgrade"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
