package battlelog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/BossRush_Go/internal/domain"
)

// Record is one line of the battle log.
type Record struct {
	Time    time.Time       `json:"time"`
	RunID   string          `json:"run_id,omitempty"`
	Type    EventType       `json:"type"`
	Round   int             `json:"round,omitempty"`
	Team    int             `json:"team,omitempty"`
	Player  int             `json:"player,omitempty"`
	Badges  int             `json:"badges,omitempty"`
	XP      int             `json:"xp,omitempty"`
	Reason  ErrorReason     `json:"reason,omitempty"`
	Message string          `json:"msg"`
	Detail  json.RawMessage `json:"detail,omitempty"`
}

// GameStart opens a run
func GameStart() Record {
	return Record{Type: EventGameStart, Message: MsgGameStart}
}

// RoundStart marks the beginning of a round
func RoundStart(round int) Record {
	return Record{
		Type:    EventRoundStart,
		Round:   round,
		Message: fmt.Sprintf(MsgRoundStart, round),
	}
}

// BadgeGrant records badges and XP awarded to one player
func BadgeGrant(g domain.Grant) Record {
	return Record{
		Type:    EventBadgeGrant,
		Round:   g.Round,
		Team:    g.Team,
		Player:  g.Player,
		Badges:  g.Badges,
		XP:      g.XP,
		Message: fmt.Sprintf(MsgBadgeGrant, g.Round, g.Team, g.Player, g.Badges, g.XP),
	}
}

// APIError records an odds lookup that could not be used
func APIError(round, team int, reason ErrorReason) Record {
	var format string
	switch reason {
	case ReasonNoData:
		format = MsgNoData
	case ReasonMissingWinRate:
		format = MsgMissingWinRate
	default:
		format = MsgMalformedResponse
	}
	return Record{
		Type:    EventAPIError,
		Round:   round,
		Team:    team,
		Reason:  reason,
		Message: fmt.Sprintf(format, round, team),
	}
}

// APIResponse records the raw odds body that led to a defeat. Bodies that are
// not valid JSON are stored as a JSON string.
func APIResponse(round, team int, raw []byte) Record {
	detail := json.RawMessage(raw)
	if !json.Valid(raw) {
		detail, _ = json.Marshal(string(raw))
	}
	return Record{
		Type:    EventAPIResponse,
		Round:   round,
		Team:    team,
		Message: fmt.Sprintf(MsgAPIResponse, raw),
		Detail:  detail,
	}
}

// BossDefeated records a team beating the first boss in the odds list
func BossDefeated(round, team int) Record {
	return Record{
		Type:    EventBossDefeated,
		Round:   round,
		Team:    team,
		Message: fmt.Sprintf(MsgBossDefeated, round, team),
	}
}

// RoundEnd marks the end of a round
func RoundEnd(round int) Record {
	return Record{
		Type:    EventRoundEnd,
		Round:   round,
		Message: fmt.Sprintf(MsgRoundEnd, round),
	}
}

// GameOver closes a run once every team has run out of bosses
func GameOver(teams int) Record {
	msg := MsgGameOver
	if teams == 2 {
		msg = MsgGameOverTwoTeams
	}
	return Record{Type: EventGameOver, Message: msg}
}

// DecodeLine parses a single JSON line into a Record
func DecodeLine(line []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		return Record{}, err
	}
	if rec.Type == "" {
		return Record{}, fmt.Errorf("missing type")
	}
	return rec, nil
}
