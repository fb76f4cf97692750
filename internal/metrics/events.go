package metrics

import (
	"strconv"

	"github.com/osse101/BossRush_Go/internal/battlelog"
)

// Appender is the battle log write side
type Appender interface {
	Append(rec battlelog.Record) error
}

// RecordingAppender derives battle metrics from the records written to the
// battle log, so the driver has a single place that reports events.
type RecordingAppender struct {
	next Appender
}

// NewRecordingAppender wraps next
func NewRecordingAppender(next Appender) *RecordingAppender {
	return &RecordingAppender{next: next}
}

// Append forwards rec and, if the write succeeded, updates metrics
func (a *RecordingAppender) Append(rec battlelog.Record) error {
	if err := a.next.Append(rec); err != nil {
		return err
	}
	Observe(rec)
	return nil
}

// Observe updates metrics for a single record
func Observe(rec battlelog.Record) {
	LogRecordsTotal.WithLabelValues(string(rec.Type)).Inc()

	team := strconv.Itoa(rec.Team)
	switch rec.Type {
	case battlelog.EventRoundStart:
		RoundsTotal.Inc()
	case battlelog.EventBadgeGrant:
		BadgesAwarded.WithLabelValues(team).Add(float64(rec.Badges))
		XPAwarded.WithLabelValues(team).Add(float64(rec.XP))
	case battlelog.EventBossDefeated:
		BossesDefeated.WithLabelValues(team).Inc()
	case battlelog.EventAPIError:
		OddsErrors.WithLabelValues(string(rec.Reason)).Inc()
	}
}

// SetBossesRemaining publishes the latest remaining count for a team
func SetBossesRemaining(team, remaining int) {
	BossesRemaining.WithLabelValues(strconv.Itoa(team)).Set(float64(remaining))
}

// ObserveAPICall records one game API call
func ObserveAPICall(operation string, seconds float64, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	APIRequestsTotal.WithLabelValues(operation, outcome).Inc()
	APIRequestDuration.WithLabelValues(operation).Observe(seconds)
}
