package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the module
const Namespace = "bossrush"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game API client metric names
const (
	MetricNameAPIRequestsTotal   = "api_requests_total"
	MetricNameAPIRequestDuration = "api_request_duration_seconds"
)

// Battle metric names
const (
	MetricNameRoundsTotal      = "rounds_total"
	MetricNameBadgesAwarded    = "badges_awarded_total"
	MetricNameXPAwarded        = "xp_awarded_total"
	MetricNameBossesDefeated   = "bosses_defeated_total"
	MetricNameBossesRemaining  = "bosses_remaining"
	MetricNameOddsErrors       = "odds_errors_total"
	MetricNameLogRecordsTotal  = "battle_log_records_total"
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

// Game API client metric help text
const (
	HelpTextAPIRequestsTotal   = "Total number of game API calls by operation and outcome"
	HelpTextAPIRequestDuration = "Game API call latency in seconds"
)

// Battle metric help text
const (
	HelpTextRoundsTotal     = "Total number of rounds played"
	HelpTextBadgesAwarded   = "Total badges awarded per team"
	HelpTextXPAwarded       = "Total XP awarded per team"
	HelpTextBossesDefeated  = "Total boss defeats logged per team"
	HelpTextBossesRemaining = "Bosses remaining per team after the latest round"
	HelpTextOddsErrors      = "Odds lookups that could not be used, by reason"
	HelpTextLogRecordsTotal = "Battle log records written, by type"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelTeam      = "team"
	LabelReason    = "reason"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
)

// Label values for LabelOutcome
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets covers both the local status server and remote API calls
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
